package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/baauozar/cvmatch/internal/extract"
	"github.com/baauozar/cvmatch/internal/scoring"
)

// scoreFileForm is the multipart form of the file-upload endpoint. The CV
// must be a file; the job side may be a file or plain text.
type scoreFileForm struct {
	CVFile  *multipart.FileHeader `form:"cv_file"`
	JobFile *multipart.FileHeader `form:"job_file"`
	JobText string                `form:"job_text"`
}

type detectLanguageResponse struct {
	CV       string `json:"cv"`
	Job      string `json:"job"`
	UILocale string `json:"ui_locale"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleScoreJSON(c *gin.Context) {
	var req scoring.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.orchestrator.Score(c.Request.Context(), req))
}

func (s *Server) handleScoreQuery(c *gin.Context) {
	req := scoring.Request{
		CVText:  c.Query("cv_text"),
		JobText: c.Query("job_text"),
	}
	c.JSON(http.StatusOK, s.orchestrator.Score(c.Request.Context(), req))
}

func (s *Server) handleScoreFile(c *gin.Context) {
	var form scoreFileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form: " + err.Error()})
		return
	}

	if form.CVFile == nil || form.CVFile.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cv_file is required"})
		return
	}
	if !extract.Supported(form.CVFile.Filename) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "cv_file must be .txt, .pdf, or .docx"})
		return
	}

	cvText, ok := s.readUpload(c, form.CVFile)
	if !ok {
		return
	}

	jobText := form.JobText
	if form.JobFile != nil && form.JobFile.Size > 0 {
		if !extract.Supported(form.JobFile.Filename) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "job_file must be .txt, .pdf, or .docx"})
			return
		}
		text, ok := s.readUpload(c, form.JobFile)
		if !ok {
			return
		}
		jobText = text
	}

	if strings.TrimSpace(jobText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide job_file (.txt/.pdf/.docx) or job_text"})
		return
	}

	req := scoring.Request{CVText: cvText, JobText: jobText}
	c.JSON(http.StatusOK, s.orchestrator.Score(c.Request.Context(), req))
}

// readUpload opens an uploaded file and resolves it to plain text. A false
// return means an error response was already written.
func (s *Server) readUpload(c *gin.Context, header *multipart.FileHeader) (string, bool) {
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return "", false
	}

	f, err := header.Open()
	if err != nil {
		s.log.Warn("cannot open upload", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		s.log.Warn("cannot read upload", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return "", false
	}

	contentType := header.Header.Get("Content-Type")
	return s.extractor.Text(c.Request.Context(), header.Filename, contentType, data), true
}

func (s *Server) handleDetectLanguageJSON(c *gin.Context) {
	var req scoring.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	s.respondDetect(c, req)
}

func (s *Server) handleDetectLanguageQuery(c *gin.Context) {
	s.respondDetect(c, scoring.Request{
		CVText:  c.Query("cv_text"),
		JobText: c.Query("job_text"),
	})
}

func (s *Server) respondDetect(c *gin.Context, req scoring.Request) {
	c.JSON(http.StatusOK, detectLanguageResponse{
		CV:       string(s.detector.Detect(req.CVText)),
		Job:      string(s.detector.Detect(req.JobText)),
		UILocale: "tr-TR",
	})
}
