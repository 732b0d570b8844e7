package config

// The default lexicons. They are plain data: deployments can replace any of
// them through the config file without touching code.

func defaultSkills() []string {
	return []string{
		"c#", ".net", "asp.net", "ef core", "sql", "postgres", "mysql",
		"azure", "aws", "gcp", "docker", "kubernetes", "microservice",
		"python", "flask", "django", "pandas", "scikit", "pytorch",
		"react", "angular", "terraform", "helm", "prometheus", "grafana", "ci/cd",
		"airflow", "spark", "sagemaker", "feature store",
	}
}

func defaultCertifications() []string {
	return []string{
		"aws", "azure", "gcp", "cka", "ckad", "pmp", "scrum master", "ielts", "toefl",
	}
}

func defaultStopwordsTR() []string {
	return []string{
		"ve", "ile", "da", "de", "mi", "mı", "mu", "mü", "bir", "bu", "şu", "o", "çok", "az", "en",
		"için", "gibi", "olan", "olarak", "ya", "veya", "ama", "fakat", "ise", "ki",
		"ben", "sen", "biz", "siz", "onlar", "hem", "her", "yıl", "ay", "gün",
	}
}

func defaultStopwordsEN() []string {
	return []string{
		"the", "a", "an", "and", "or", "but", "with", "of", "to", "in", "on", "for", "is", "are", "was", "were",
		"i", "you", "he", "she", "it", "we", "they", "this", "that", "these", "those", "as", "by", "from", "at",
	}
}

func defaultTurkishHints() []string {
	return []string{"ve", "bir", "ile", "olarak", "deneyim", "yıl", "proje", "türkçe", "ingilizce"}
}

func defaultEnglishHints() []string {
	return []string{"and", "with", "experience", "years", "project", "english", "turkish"}
}
