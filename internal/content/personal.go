package content

import "github.com/vpenugonda/portfolio/internal/domain/model"

func personalData() model.PersonalInfo {
	return model.PersonalInfo{
		Name:              "Venkata Gupta Penugonda",
		Title:             "Data Engineer",
		Email:             "venkataguptapenugonda@gmail.com",
		Location:          "Bellevue, WA",
		YearsOfExperience: 5,
		Summary: "Experienced Data Engineer with over 5 years of expertise in designing and implementing " +
			"scalable data solutions across Azure, AWS, and GCP cloud platforms. Proven track record of " +
			"developing robust ETL/ELT pipelines, real-time streaming architectures, and cloud-native data " +
			"lakehouses for clients in finance, insurance, healthcare, and pharmaceutical domains. Skilled in " +
			"tools such as Azure Data Factory, AWS Glue, Apache Airflow, Databricks, Spark, and BigQuery. " +
			"Strong knowledge of data governance, quality frameworks, and compliance with HIPAA and SOX standards.",
		ProfileImage: "/images/profile_image.png",
		ResumeURL:    "/resume/Venkata_Data_Engineer.pdf",
		SocialLinks: []model.SocialLink{
			{
				Name: "LinkedIn",
				URL:  "https://www.linkedin.com/in/venkata-gupta-penugonda-b374b2237/",
				Icon: "SiLinkedin",
			},
		},
	}
}

func certificationData() []model.Certification {
	return []model.Certification{
		{
			ID:            "azure-data-engineer",
			Name:          "Microsoft Certified: Azure Data Engineer Associate",
			Issuer:        "Microsoft",
			Date:          "2023-08",
			CredentialID:  "AZURE-DE-12345",
			CredentialURL: "https://learn.microsoft.com/en-us/certifications/azure-data-engineer",
			Logo:          "/images/certifications/azure-data-engineer.png",
		},
		{
			ID:            "aws-data-analytics",
			Name:          "AWS Certified Data Analytics - Specialty",
			Issuer:        "Amazon Web Services",
			Date:          "2023-05",
			CredentialID:  "AWS-DAS-67890",
			CredentialURL: "https://aws.amazon.com/certification/certified-data-analytics-specialty/",
			Logo:          "/images/certifications/aws-data-analytics.png",
		},
		{
			ID:            "gcp-data-engineer",
			Name:          "Google Cloud Professional Data Engineer",
			Issuer:        "Google Cloud",
			Date:          "2022-11",
			CredentialID:  "GCP-PDE-54321",
			CredentialURL: "https://cloud.google.com/certification/data-engineer",
			Logo:          "/images/certifications/gcp-data-engineer.png",
		},
		{
			ID:            "databricks-associate",
			Name:          "Databricks Certified Data Engineer Associate",
			Issuer:        "Databricks",
			Date:          "2023-02",
			CredentialID:  "DB-DE-11111",
			CredentialURL: "https://www.databricks.com/learn/certification/data-engineer-associate",
			Logo:          "/images/certifications/databricks-associate.png",
		},
		{
			ID:            "apache-airflow",
			Name:          "Apache Airflow Fundamentals",
			Issuer:        "Astronomer",
			Date:          "2022-09",
			CredentialID:  "ASTRO-AF-98765",
			CredentialURL: "https://www.astronomer.io/certification/",
			Logo:          "/images/certifications/apache-airflow.png",
		},
	}
}
