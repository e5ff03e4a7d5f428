package heuristic

// technicalVocabulary is the fixed reference set of technology terms a
// resume is scanned against. Detection is case-insensitive; canonical
// casing below is what ends up in the profile.
var technicalVocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "SQL",
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js",
	"Django", "Flask", "Spring", ".NET",
	"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
	"AWS", "Azure", "GCP",
	"Git", "Linux",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
	"Kafka", "RabbitMQ",
	"GraphQL", "REST API", "gRPC", "Microservices",
	"Machine Learning", "Deep Learning", "Data Science",
	"TensorFlow", "PyTorch", "Pandas", "NumPy",
	"Spark", "Hadoop", "Airflow",
	"Tableau", "Power BI",
	"CI/CD", "DevOps", "Agile", "Scrum",
}

// softVocabulary holds non-technical skills worth surfacing in search.
var softVocabulary = []string{
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Collaboration", "Mentoring", "Time Management",
	"Project Management", "Critical Thinking", "Adaptability",
}

// educationKeywords in priority order: the first one present in the text
// wins, regardless of where it appears.
var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "mba",
	"computer science", "engineering", "business",
	"mathematics", "physics", "chemistry",
}
