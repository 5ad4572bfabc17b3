package fallback

// CategoryProfile bundles the per-category course pools and topic pool used
// by procedural synthesis.
type CategoryProfile struct {
	Foundations []string
	Core        []string
	Advanced    []string
	Topics      []string
}

const defaultCategory = "tech"

// rules are evaluated top to bottom; the first category whose keyword set
// matches wins. Specific technology categories come before the broad
// buckets because the keyword sets overlap — this ordering is the tie-break
// and must not be reordered.
var rules = []struct {
	category string
	keywords []string
}{
	{"ai", []string{"artificial intelligence", " ai ", "ai/ml", "machine learning", "deep learning"}},
	{"data_science", []string{"data science", "data analytics", "big data"}},
	{"cybersecurity", []string{"cyber", "security", "ethical hack", "infosec"}},
	{"vlsi", []string{"vlsi", "asic", "fpga", "chip design", "semiconductor"}},
	{"business", []string{"busin", "manag", "mba", "marke", "finan", "econo"}},
	{"health", []string{"health", "med", "nurs", "bio", "pharm", "clinic"}},
	{"engineering", []string{"engin", "mech", "civil", "elect", "robot"}},
	{"science", []string{"scien", "phys", "chem", "math"}},
}

var categories = map[string]CategoryProfile{
	"ai": {
		Foundations: []string{"Linear Algebra for ML", "Probability & Statistics", "Python for AI"},
		Core:        []string{"Machine Learning Fundamentals", "Deep Learning Architectures", "Natural Language Processing", "Computer Vision"},
		Advanced:    []string{"Reinforcement Learning", "Generative AI", "AI Ethics & Governance", "Edge AI"},
		Topics:      []string{"Neural Network Backpropagation", "Transformer Models", "CNN & RNN Architectures", "Gradient Descent Optimization", "Large Language Models", "Federated Learning"},
	},
	"data_science": {
		Foundations: []string{"Statistics & Probability", "Data Wrangling with Pandas", "SQL Mastery"},
		Core:        []string{"Exploratory Data Analysis", "Machine Learning for DS", "Data Visualization", "Feature Engineering"},
		Advanced:    []string{"Big Data Analytics", "Time Series Forecasting", "MLOps & Deployment", "A/B Testing"},
		Topics:      []string{"Regression Analysis", "Clustering Algorithms", "Hypothesis Testing", "Dashboard Design", "Data Pipelines", "Model Interpretability"},
	},
	"cybersecurity": {
		Foundations: []string{"Networking Fundamentals", "Operating System Security", "Cryptography Basics"},
		Core:        []string{"Ethical Hacking", "Security Operations", "Cloud Security", "Threat Intelligence"},
		Advanced:    []string{"Penetration Testing", "Incident Response", "Zero Trust Architecture", "Security Automation"},
		Topics:      []string{"OWASP Top 10", "Firewall Configuration", "SIEM Analysis", "Malware Analysis", "Identity Management", "Vulnerability Assessment"},
	},
	"vlsi": {
		Foundations: []string{"Digital Electronics", "CMOS Technology", "Verilog HDL"},
		Core:        []string{"ASIC Design Flow", "FPGA Programming", "Physical Design", "Timing Analysis"},
		Advanced:    []string{"Low Power Design", "Design for Testability", "SoC Architecture", "Nanoscale CMOS"},
		Topics:      []string{"Synthesis & Optimization", "Floor Planning", "Clock Tree Synthesis", "RTL Verification", "Static Timing Analysis", "Power Grid Analysis"},
	},
	"tech": {
		Foundations: []string{"Computational Logic", "Data Structures", "Algorithm Design"},
		Core:        []string{"System Architecture", "Database Management", "Software Engineering", "Network Security"},
		Advanced:    []string{"Machine Learning", "Distributed Systems", "Cloud Computing", "AI Ethics"},
		Topics:      []string{"Asymptotic Analysis", "SQL Optimization", "Concurrent Programming", "Microservices", "API Integration", "Scalability Patterns"},
	},
	"business": {
		Foundations: []string{"Microeconomics", "Business Communication", "Accounting Principles"},
		Core:        []string{"Strategic Marketing", "Financial Management", "Operations Logistics", "Organizational Behavior"},
		Advanced:    []string{"Corporate Governance", "Market Analytics", "International Finance", "Entrepreneurship"},
		Topics:      []string{"Supply Chain Optimization", "SWOT Analysis", "Regression Modeling", "Crisis Management", "Venture Capital Valuation", "ESG Standards"},
	},
	"health": {
		Foundations: []string{"Anatomy & Physiology", "Medical Terminology", "Health Psychology"},
		Core:        []string{"Pathophysiology", "Pharmacology", "Clinical Assessment", "Epidemiology"},
		Advanced:    []string{"Health Informatics", "Biostatistics", "Medical Ethics", "Healthcare Policy"},
		Topics:      []string{"Patient Centered Care", "Molecular Diagnosis", "Drug Interaction Analysis", "HIPAA Compliance", "Global Health Trends", "Clinical Protocol Design"},
	},
	"engineering": {
		Foundations: []string{"Engineering Mathematics", "Solid Mechanics", "Thermodynamics"},
		Core:        []string{"Fluid Dynamics", "Control Systems", "Material Science", "CAD/CAM Modeling"},
		Advanced:    []string{"Robotics Engineering", "Finite Element Analysis", "Structural Integrity", "Sustainable Design"},
		Topics:      []string{"Stress-Strain Analysis", "Kinematics", "Heat Transfer", "Mechatronics", "Failure Mode Analysis", "Lean Manufacturing"},
	},
	"science": {
		Foundations: []string{"Scientific Method", "Calculus for Science", "Experimental Techniques"},
		Core:        []string{"Quantitative Analysis", "Organic Chemistry", "Quantum Mechanics", "Genetics"},
		Advanced:    []string{"Nanotechnology", "Astrobiology", "Particle Physics", "Environmental Ethics"},
		Topics:      []string{"Spectroscopy", "Statistical Thermodynamics", "Genetic Sequencing", "Subatomic Particles", "Ecosystem Dynamics", "Chemical Equilibrium"},
	},
}
