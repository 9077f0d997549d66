package content

import "github.com/vpenugonda/portfolio/internal/domain/model"

func projectData() []model.Project {
	return []model.Project{
		{
			ID:          "real-time-analytics-pipeline",
			Title:       "Real-Time Analytics Pipeline",
			Description: "Scalable data pipeline processing 10M+ events daily with sub-second latency",
			LongDescription: "Built a comprehensive real-time analytics pipeline using Apache Kafka, Apache Spark, " +
				"and AWS services to process over 10 million events daily. The system provides real-time insights " +
				"for business intelligence dashboards and automated alerting systems.",
			Technologies: []string{"Apache Kafka", "Apache Spark", "AWS Kinesis", "Python", "Scala", "Redis", "PostgreSQL", "Docker"},
			Category:     model.CategoryDataPipeline,
			Image:        "/images/projects/real_time_analytics.png",
			GitHubURL:    "https://github.com/username/analytics-pipeline",
			Achievements: []string{
				"Reduced data processing latency from 5 minutes to under 30 seconds",
				"Increased system throughput by 300% through optimized partitioning",
				"Implemented automated scaling reducing infrastructure costs by 40%",
				"Built comprehensive monitoring and alerting system",
			},
			Timeline: "6 months",
			Featured: true,
			Status:   model.StatusCompleted,
			Metrics: []model.Metric{
				{Label: "Events/Day", Value: "10M+"},
				{Label: "Latency", Value: "<30s"},
				{Label: "Cost Reduction", Value: "40%"},
			},
		},
		{
			ID:          "ml-recommendation-engine",
			Title:       "ML-Powered Recommendation Engine",
			Description: "Machine learning system delivering personalized recommendations with 85% accuracy",
			LongDescription: "Developed and deployed a machine learning recommendation engine using collaborative " +
				"filtering and deep learning techniques. The system processes user behavior data to generate " +
				"personalized recommendations, resulting in significant improvements in user engagement and " +
				"conversion rates.",
			Technologies: []string{"Python", "TensorFlow", "Apache Airflow", "MLflow", "Kubernetes", "PostgreSQL", "Redis", "FastAPI"},
			Category:     model.CategoryMLOps,
			Image:        "/images/projects/ML_powered.png",
			LiveURL:      "https://demo-recommendations.example.com",
			GitHubURL:    "https://github.com/username/ml-recommendations",
			Achievements: []string{
				"Achieved 85% recommendation accuracy using hybrid filtering approach",
				"Increased user engagement by 45% and conversion rates by 28%",
				"Implemented A/B testing framework for continuous model improvement",
				"Built automated model retraining pipeline with MLOps best practices",
			},
			Timeline: "8 months",
			Featured: true,
			Status:   model.StatusCompleted,
			Metrics: []model.Metric{
				{Label: "Accuracy", Value: "85%"},
				{Label: "Engagement Lift", Value: "45%"},
				{Label: "Conversion Lift", Value: "28%"},
			},
		},
		{
			ID:          "cloud-data-warehouse",
			Title:       "Cloud Data Warehouse Migration",
			Description: "Migrated legacy on-premise data warehouse to modern cloud architecture",
			LongDescription: "Led the migration of a legacy on-premise data warehouse to a modern cloud-native " +
				"architecture using Snowflake and AWS. The project involved data modeling, ETL pipeline redesign, " +
				"and performance optimization resulting in significant cost savings and improved query performance.",
			Technologies: []string{"Snowflake", "AWS S3", "AWS Glue", "dbt", "Python", "SQL", "Terraform", "Apache Airflow"},
			Category:     model.CategoryInfrastructure,
			Image:        "/images/projects/cloud_data_warehouse.png",
			Achievements: []string{
				"Migrated 500TB+ of historical data with zero downtime",
				"Improved query performance by 10x through optimized data modeling",
				"Reduced infrastructure costs by 60% with cloud-native architecture",
				"Implemented automated data quality monitoring and validation",
			},
			Timeline: "12 months",
			Featured: false,
			Status:   model.StatusCompleted,
			Metrics: []model.Metric{
				{Label: "Data Migrated", Value: "500TB+"},
				{Label: "Performance Gain", Value: "10x"},
				{Label: "Cost Reduction", Value: "60%"},
			},
		},
		{
			ID:          "customer-analytics-dashboard",
			Title:       "Customer Analytics Dashboard",
			Description: "Interactive dashboard providing 360-degree customer insights for business teams",
			LongDescription: "Created a comprehensive customer analytics dashboard using modern BI tools and data " +
				"visualization techniques. The dashboard provides real-time insights into customer behavior, " +
				"segmentation, and lifetime value, enabling data-driven decision making across the organization.",
			Technologies: []string{"Tableau", "Python", "PostgreSQL", "Apache Spark", "AWS Redshift", "REST APIs", "Docker"},
			Category:     model.CategoryAnalytics,
			Image:        "/images/projects/customer_analytics_dashboard.png",
			LiveURL:      "https://analytics-demo.example.com",
			Achievements: []string{
				"Built 15+ interactive dashboards serving 200+ business users",
				"Reduced report generation time from hours to minutes",
				"Enabled self-service analytics reducing analyst workload by 50%",
				"Implemented automated data refresh and alert systems",
			},
			Timeline: "4 months",
			Featured: false,
			Status:   model.StatusCompleted,
			Metrics: []model.Metric{
				{Label: "Active Users", Value: "200+"},
				{Label: "Dashboards", Value: "15+"},
				{Label: "Time Savings", Value: "50%"},
			},
		},
		{
			ID:          "fraud-detection-system",
			Title:       "Real-Time Fraud Detection",
			Description: "ML-based fraud detection system processing transactions in real-time",
			LongDescription: "Developed a sophisticated fraud detection system using machine learning algorithms " +
				"and real-time stream processing. The system analyzes transaction patterns and user behavior to " +
				"identify potentially fraudulent activities with high accuracy and low false positive rates.",
			Technologies: []string{"Python", "Apache Kafka", "Apache Flink", "scikit-learn", "PostgreSQL", "Redis", "Docker", "Kubernetes"},
			Category:     model.CategoryMLOps,
			Image:        "/images/projects/real_time_fraud.png",
			Achievements: []string{
				"Achieved 99.2% accuracy with 0.1% false positive rate",
				"Processes 50,000+ transactions per second in real-time",
				"Prevented $2M+ in fraudulent transactions in first year",
				"Implemented explainable AI for regulatory compliance",
			},
			Timeline: "10 months",
			Featured: true,
			Status:   model.StatusCompleted,
			Metrics: []model.Metric{
				{Label: "Accuracy", Value: "99.2%"},
				{Label: "TPS", Value: "50K+"},
				{Label: "Fraud Prevented", Value: "$2M+"},
			},
		},
		{
			ID:          "data-lake-modernization",
			Title:       "Data Lake Modernization",
			Description: "Modern data lake architecture with automated governance and cataloging",
			LongDescription: "Designed and implemented a modern data lake architecture on AWS with automated data " +
				"governance, cataloging, and lineage tracking. The solution provides a scalable foundation for " +
				"analytics and machine learning workloads while ensuring data quality and compliance.",
			Technologies: []string{"AWS S3", "AWS Glue", "Apache Iceberg", "Apache Spark", "Python", "Terraform", "Apache Atlas", "dbt"},
			Category:     model.CategoryInfrastructure,
			Image:        "/images/projects/data_lake.png",
			GitHubURL:    "https://github.com/username/data-lake-modernization",
			Achievements: []string{
				"Designed scalable architecture supporting petabyte-scale data",
				"Implemented automated data cataloging and lineage tracking",
				"Reduced data discovery time from weeks to hours",
				"Built comprehensive data governance framework",
			},
			Timeline: "6 months",
			Featured: false,
			Status:   model.StatusInProgress,
			Metrics: []model.Metric{
				{Label: "Data Scale", Value: "Petabyte+"},
				{Label: "Discovery Time", Value: "Hours"},
				{Label: "Governance Score", Value: "95%"},
			},
		},
	}
}
