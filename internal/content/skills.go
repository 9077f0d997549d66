package content

import "github.com/vpenugonda/portfolio/internal/domain/model"

func skillData() []model.Skill {
	return []model.Skill{
		// Programming languages
		{Name: "Python", Category: model.SkillProgramming, Proficiency: 5, Icon: "SiPython", Description: "Expert in Python for data engineering, ETL pipelines, and automation", YearsOfExperience: 4},
		{Name: "SQL", Category: model.SkillProgramming, Proficiency: 5, Icon: "SiPostgresql", Description: "Advanced SQL for complex queries, T-SQL, Spark SQL, and database optimization", YearsOfExperience: 4},
		{Name: "Java", Category: model.SkillProgramming, Proficiency: 3, Icon: "SiOpenjdk", Description: "Solid understanding of Java for enterprise applications and big data tools", YearsOfExperience: 2},
		{Name: "Shell Scripting", Category: model.SkillProgramming, Proficiency: 4, Icon: "SiGnubash", Description: "Bash scripting for automation and system administration", YearsOfExperience: 3},
		{Name: "HTML/CSS", Category: model.SkillProgramming, Proficiency: 3, Icon: "SiHtml5", Description: "Web development fundamentals for dashboards and reporting interfaces", YearsOfExperience: 2},
		{Name: "JavaScript", Category: model.SkillProgramming, Proficiency: 3, Icon: "SiJavascript", Description: "Frontend development and API integrations", YearsOfExperience: 2},

		// Cloud platforms
		{Name: "Microsoft Azure", Category: model.SkillCloud, Proficiency: 5, Icon: "SiMicrosoftazure", Description: "Azure Data Factory, ADLS, Synapse, Databricks, Event Hubs, Purview", YearsOfExperience: 2},
		{Name: "Amazon Web Services", Category: model.SkillCloud, Proficiency: 5, Icon: "SiAmazonaws", Description: "AWS Glue, Redshift, Lambda, Kinesis, S3, CloudWatch, IAM", YearsOfExperience: 2},
		{Name: "Google Cloud Platform", Category: model.SkillCloud, Proficiency: 5, Icon: "SiGooglecloud", Description: "BigQuery, GCS, Cloud Composer, BigQuery ML", YearsOfExperience: 1},

		// ETL and orchestration
		{Name: "Azure Data Factory", Category: model.SkillFrameworks, Proficiency: 5, Icon: "SiMicrosoftazure", Description: "Enterprise ETL pipelines and data orchestration on Azure", YearsOfExperience: 1},
		{Name: "AWS Glue", Category: model.SkillFrameworks, Proficiency: 4, Icon: "SiAmazonaws", Description: "Serverless ETL service for data transformation and cataloging", YearsOfExperience: 1},
		{Name: "Apache Airflow", Category: model.SkillFrameworks, Proficiency: 4, Icon: "SiApacheairflow", Description: "Workflow orchestration and data pipeline management", YearsOfExperience: 2},
		{Name: "Talend", Category: model.SkillFrameworks, Proficiency: 3, Icon: "SiTalend", Description: "Data integration and ETL development platform", YearsOfExperience: 1},
		{Name: "Informatica", Category: model.SkillFrameworks, Proficiency: 3, Icon: "SiInformatica", Description: "Enterprise data integration and ETL solutions", YearsOfExperience: 1},
		{Name: "Apache NiFi", Category: model.SkillFrameworks, Proficiency: 3, Icon: "SiApache", Description: "Data flow automation and real-time data ingestion", YearsOfExperience: 1},

		// Big data processing
		{Name: "Apache Spark", Category: model.SkillFrameworks, Proficiency: 4, Icon: "SiApachespark", Description: "Large-scale data processing with PySpark and Spark SQL", YearsOfExperience: 2},
		{Name: "PySpark", Category: model.SkillFrameworks, Proficiency: 4, Icon: "SiApachespark", Description: "Python API for Apache Spark data processing", YearsOfExperience: 2},
		{Name: "Databricks", Category: model.SkillFrameworks, Proficiency: 4, Icon: "SiDatabricks", Description: "Unified analytics platform for big data and machine learning", YearsOfExperience: 1},
		{Name: "Delta Lake", Category: model.SkillFrameworks, Proficiency: 4, Icon: "SiDelta", Description: "Open-source storage layer for data lakes with ACID transactions", YearsOfExperience: 1},
		{Name: "Hadoop", Category: model.SkillFrameworks, Proficiency: 3, Icon: "SiApachehadoop", Description: "Distributed storage and processing of large datasets", YearsOfExperience: 2},

		// DevOps and CI/CD
		{Name: "Azure DevOps", Category: model.SkillTools, Proficiency: 4, Icon: "SiAzuredevops", Description: "CI/CD pipelines and project management for Azure environments", YearsOfExperience: 1},
		{Name: "GitHub", Category: model.SkillTools, Proficiency: 4, Icon: "SiGithub", Description: "Version control and collaborative development workflows", YearsOfExperience: 3},
		{Name: "Jenkins", Category: model.SkillTools, Proficiency: 3, Icon: "SiJenkins", Description: "CI/CD automation and build pipelines", YearsOfExperience: 1},
		{Name: "Terraform", Category: model.SkillTools, Proficiency: 4, Icon: "SiTerraform", Description: "Infrastructure as Code for cloud resource management", YearsOfExperience: 1},
		{Name: "CloudFormation", Category: model.SkillTools, Proficiency: 3, Icon: "SiAmazonaws", Description: "AWS infrastructure provisioning and management", YearsOfExperience: 1},
		{Name: "Docker", Category: model.SkillTools, Proficiency: 3, Icon: "SiDocker", Description: "Containerization for data applications and microservices", YearsOfExperience: 2},

		// Data warehousing
		{Name: "Azure Synapse Analytics", Category: model.SkillDatabases, Proficiency: 4, Icon: "SiMicrosoftazure", Description: "Enterprise data warehouse and analytics service", YearsOfExperience: 1},
		{Name: "Amazon Redshift", Category: model.SkillDatabases, Proficiency: 4, Icon: "SiAmazonaws", Description: "Cloud data warehouse for analytics and reporting", YearsOfExperience: 1},
		{Name: "Google BigQuery", Category: model.SkillDatabases, Proficiency: 4, Icon: "SiGooglecloud", Description: "Serverless data warehouse for analytics and machine learning", YearsOfExperience: 1},
		{Name: "SQL Server", Category: model.SkillDatabases, Proficiency: 4, Icon: "SiMicrosoftsqlserver", Description: "Relational database management and T-SQL development", YearsOfExperience: 2},
		{Name: "PostgreSQL", Category: model.SkillDatabases, Proficiency: 4, Icon: "SiPostgresql", Description: "Advanced relational database features and optimization", YearsOfExperience: 2},

		// Visualization
		{Name: "Power BI", Category: model.SkillTools, Proficiency: 4, Icon: "SiPowerbi", Description: "Business intelligence and interactive data visualization", YearsOfExperience: 3},
		{Name: "Looker", Category: model.SkillTools, Proficiency: 3, Icon: "SiLooker", Description: "Modern BI platform and self-service analytics", YearsOfExperience: 1},
		{Name: "Tableau", Category: model.SkillTools, Proficiency: 3, Icon: "SiTableau", Description: "Advanced data visualization and dashboard development", YearsOfExperience: 1},

		// Governance
		{Name: "Microsoft Purview", Category: model.SkillTools, Proficiency: 3, Icon: "SiMicrosoft", Description: "Data governance, lineage, and cataloging platform", YearsOfExperience: 1},
		{Name: "AWS Lake Formation", Category: model.SkillTools, Proficiency: 3, Icon: "SiAmazonaws", Description: "Data lake governance and access control", YearsOfExperience: 1},
		{Name: "Glue Catalog", Category: model.SkillTools, Proficiency: 3, Icon: "SiAmazonaws", Description: "Metadata repository and data discovery service", YearsOfExperience: 1},

		// Developer tooling
		{Name: "Visual Studio Code", Category: model.SkillTools, Proficiency: 5, Icon: "SiVisualstudiocode", Description: "Primary IDE for development and debugging", YearsOfExperience: 4},
		{Name: "Eclipse", Category: model.SkillTools, Proficiency: 3, Icon: "SiEclipseide", Description: "Java development environment", YearsOfExperience: 1},
		{Name: "Jupyter Notebook", Category: model.SkillTools, Proficiency: 4, Icon: "SiJupyter", Description: "Interactive development for data analysis and prototyping", YearsOfExperience: 3},
		{Name: "Postman", Category: model.SkillTools, Proficiency: 3, Icon: "SiPostman", Description: "API testing and development", YearsOfExperience: 2},
		{Name: "Confluence", Category: model.SkillTools, Proficiency: 3, Icon: "SiConfluence", Description: "Documentation and knowledge management", YearsOfExperience: 2},
	}
}
