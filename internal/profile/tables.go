package profile

// DomainProfile bundles the authored knowledge for one domain: an ordered
// course-name list, a topic pool, and the career/skill lists surfaced in the
// payload.
type DomainProfile struct {
	Category string
	Courses  []string
	Topics   []string
	Careers  []string
	Skills   []string
}

// ProgramMeta carries structural metadata per program type.
type ProgramMeta struct {
	Level     string
	Semesters int
	Credits   int
}

const (
	defaultDomain  = "Computer Science"
	defaultProgram = "B.Tech"
)

var programs = map[string]ProgramMeta{
	"B.Tech":           {Level: "Undergraduate", Semesters: 8, Credits: 4},
	"M.Tech":           {Level: "Graduate", Semesters: 4, Credits: 4},
	"B.Sc":             {Level: "Undergraduate", Semesters: 6, Credits: 3},
	"M.Sc":             {Level: "Graduate", Semesters: 4, Credits: 3},
	"MBA":              {Level: "Graduate", Semesters: 4, Credits: 3},
	"BBA":              {Level: "Undergraduate", Semesters: 6, Credits: 3},
	"PhD":              {Level: "Doctoral", Semesters: 8, Credits: 4},
	"Diploma":          {Level: "Undergraduate", Semesters: 4, Credits: 3},
	"Associate Degree": {Level: "Undergraduate", Semesters: 4, Credits: 3},
	"Certification":    {Level: "Professional", Semesters: 2, Credits: 2},
}

var domains = map[string]DomainProfile{
	"Artificial Intelligence": {
		Category: "tech",
		Courses:  []string{"Foundations of AI", "Machine Learning", "Deep Learning", "Natural Language Processing", "Computer Vision", "Reinforcement Learning", "AI Ethics", "Capstone: AI Systems"},
		Topics:   []string{"Neural Networks", "Transformers", "CNNs", "RNNs", "Gradient Descent", "Backpropagation", "LLMs", "Federated Learning"},
		Careers:  []string{"AI Engineer", "ML Engineer", "Data Scientist", "Research Scientist", "AI Product Manager"},
		Skills:   []string{"Python", "TensorFlow", "PyTorch", "Linear Algebra", "Statistics"},
	},
	"Data Science": {
		Category: "tech",
		Courses:  []string{"Introduction to Data Science", "Statistics & Probability", "Machine Learning", "Data Visualization", "Big Data Analytics", "MLOps", "Business Intelligence", "Capstone: Data Projects"},
		Topics:   []string{"Regression Analysis", "Clustering", "Hypothesis Testing", "Feature Engineering", "Data Pipelines", "A/B Testing"},
		Careers:  []string{"Data Scientist", "Data Analyst", "BI Analyst", "ML Engineer", "Analytics Consultant"},
		Skills:   []string{"Python", "SQL", "Tableau", "Statistics", "Machine Learning"},
	},
	"Cybersecurity": {
		Category: "tech",
		Courses:  []string{"Cybersecurity Fundamentals", "Network Security", "Cryptography", "Ethical Hacking", "Incident Response", "Cloud Security", "Security Operations", "Capstone: Security Audit"},
		Topics:   []string{"OWASP Top 10", "Firewall Config", "SIEM", "Malware Analysis", "Penetration Testing", "Zero Trust"},
		Careers:  []string{"Security Analyst", "Penetration Tester", "Security Engineer", "CISO", "Incident Responder"},
		Skills:   []string{"Network Security", "Linux", "Python", "SIEM Tools", "Ethical Hacking"},
	},
	"Computer Science": {
		Category: "tech",
		Courses:  []string{"Programming Fundamentals", "Data Structures", "Algorithms", "Operating Systems", "Database Systems", "Software Engineering", "Computer Networks", "Capstone: Software Project"},
		Topics:   []string{"Sorting Algorithms", "Graph Theory", "Concurrency", "OOP", "SQL", "API Design"},
		Careers:  []string{"Software Engineer", "Backend Developer", "Systems Architect", "DevOps Engineer", "Tech Lead"},
		Skills:   []string{"Python", "Java", "SQL", "Data Structures", "System Design"},
	},
	"VLSI Design": {
		Category: "tech",
		Courses:  []string{"Digital Electronics", "CMOS Technology", "Verilog HDL", "ASIC Design", "FPGA Programming", "Physical Design", "DFT", "Capstone: Chip Design"},
		Topics:   []string{"RTL Verification", "Synthesis", "Floor Planning", "Clock Tree", "Timing Analysis", "Power Grid"},
		Careers:  []string{"VLSI Engineer", "Design Engineer", "Verification Engineer", "Physical Design Engineer", "ASIC Architect"},
		Skills:   []string{"Verilog", "SystemVerilog", "Cadence", "Synopsys", "FPGA"},
	},
	"Machine Learning": {
		Category: "tech",
		Courses:  []string{"ML Fundamentals", "Supervised Learning", "Unsupervised Learning", "Deep Learning", "NLP", "Computer Vision", "MLOps", "Capstone: ML Systems"},
		Topics:   []string{"Linear Regression", "Decision Trees", "Neural Networks", "CNNs", "Transfer Learning", "Model Deployment"},
		Careers:  []string{"ML Engineer", "Data Scientist", "AI Researcher", "MLOps Engineer", "Applied Scientist"},
		Skills:   []string{"Python", "Scikit-learn", "TensorFlow", "PyTorch", "Statistics"},
	},
	"Cloud Computing": {
		Category: "tech",
		Courses:  []string{"Cloud Fundamentals", "AWS Architecture", "Azure Services", "Kubernetes", "Serverless", "Cloud Security", "DevOps", "Capstone: Cloud Migration"},
		Topics:   []string{"EC2", "S3", "Lambda", "Docker", "CI/CD", "Infrastructure as Code"},
		Careers:  []string{"Cloud Architect", "DevOps Engineer", "SRE", "Cloud Consultant", "Platform Engineer"},
		Skills:   []string{"AWS", "Azure", "Kubernetes", "Terraform", "Docker"},
	},
	"Web Development": {
		Category: "tech",
		Courses:  []string{"HTML/CSS", "JavaScript", "React/Vue", "Node.js", "Databases", "API Development", "DevOps Basics", "Capstone: Full Stack App"},
		Topics:   []string{"REST APIs", "React Hooks", "SQL", "Authentication", "Responsive Design", "Performance"},
		Careers:  []string{"Frontend Developer", "Backend Developer", "Full Stack Developer", "UI Engineer", "Web Architect"},
		Skills:   []string{"JavaScript", "React", "Node.js", "SQL", "Git"},
	},
	"Marketing": {
		Category: "business",
		Courses:  []string{"Marketing Management", "Consumer Behavior", "Digital Marketing", "Brand Management", "Marketing Analytics", "Sales Strategy", "IMC", "Capstone: Marketing Plan"},
		Topics:   []string{"STP", "SWOT", "SEO/SEM", "Social Media", "Content Marketing", "Analytics"},
		Careers:  []string{"Marketing Manager", "Brand Manager", "Digital Marketing Director", "CMO", "Growth Manager"},
		Skills:   []string{"Digital Marketing", "Analytics", "Brand Strategy", "Communication", "SEO"},
	},
	"Finance": {
		Category: "business",
		Courses:  []string{"Corporate Finance", "Financial Markets", "Investment Analysis", "Risk Management", "Financial Modeling", "Derivatives", "Valuation", "Capstone: Investment Portfolio"},
		Topics:   []string{"DCF", "WACC", "Portfolio Theory", "Options", "Bond Valuation", "M&A"},
		Careers:  []string{"Financial Analyst", "Investment Banker", "Portfolio Manager", "CFO", "Risk Manager"},
		Skills:   []string{"Financial Modeling", "Excel", "Valuation", "Risk Analysis", "CFA Prep"},
	},
	"Human Resources": {
		Category: "business",
		Courses:  []string{"HR Management", "Talent Acquisition", "Compensation & Benefits", "Employee Relations", "HR Analytics", "Organizational Development", "Labor Laws", "Capstone: HR Strategy"},
		Topics:   []string{"Recruitment", "Performance Management", "Training", "HRIS", "Culture", "Diversity"},
		Careers:  []string{"HR Manager", "Talent Acquisition Lead", "HR Business Partner", "CHRO", "L&D Manager"},
		Skills:   []string{"HR Analytics", "Communication", "Labor Law", "HRIS", "Leadership"},
	},
	"Operations": {
		Category: "business",
		Courses:  []string{"Operations Management", "Supply Chain", "Quality Management", "Lean Six Sigma", "Project Management", "Logistics", "Procurement", "Capstone: Process Optimization"},
		Topics:   []string{"Inventory Management", "JIT", "TQM", "Process Mapping", "KPIs", "Forecasting"},
		Careers:  []string{"Operations Manager", "Supply Chain Manager", "Process Engineer", "COO", "Logistics Director"},
		Skills:   []string{"Lean Six Sigma", "Project Management", "Analytics", "ERP", "Process Optimization"},
	},
	"Business Analytics": {
		Category: "business",
		Courses:  []string{"Analytics Fundamentals", "Statistics for Business", "Predictive Modeling", "Data Visualization", "Decision Science", "Big Data", "Machine Learning for Business", "Capstone: Analytics Project"},
		Topics:   []string{"Regression", "Forecasting", "Dashboards", "SQL", "Python", "Optimization"},
		Careers:  []string{"Business Analyst", "Data Analyst", "Analytics Manager", "Decision Scientist", "BI Developer"},
		Skills:   []string{"SQL", "Python", "Tableau", "Statistics", "Excel"},
	},
	"Physics": {
		Category: "science",
		Courses:  []string{"Classical Mechanics", "Electromagnetism", "Quantum Mechanics", "Thermodynamics", "Statistical Mechanics", "Optics", "Nuclear Physics", "Capstone: Research Project"},
		Topics:   []string{"Newton's Laws", "Maxwell Equations", "Schrodinger", "Entropy", "Wave-Particle Duality", "Relativity"},
		Careers:  []string{"Physicist", "Research Scientist", "Data Scientist", "Quant Analyst", "Lab Director"},
		Skills:   []string{"Mathematical Modeling", "Python", "Lab Skills", "Data Analysis", "Research"},
	},
	"Chemistry": {
		Category: "science",
		Courses:  []string{"General Chemistry", "Organic Chemistry", "Inorganic Chemistry", "Physical Chemistry", "Analytical Chemistry", "Biochemistry", "Spectroscopy", "Capstone: Research"},
		Topics:   []string{"Reactions", "Synthesis", "Thermodynamics", "Spectroscopy", "Kinetics", "Bonding"},
		Careers:  []string{"Chemist", "Research Scientist", "Lab Manager", "Quality Analyst", "Pharma Scientist"},
		Skills:   []string{"Lab Techniques", "Spectroscopy", "Data Analysis", "Safety", "Research"},
	},
	"Mathematics": {
		Category: "science",
		Courses:  []string{"Calculus", "Linear Algebra", "Abstract Algebra", "Real Analysis", "Probability", "Statistics", "Numerical Methods", "Capstone: Research"},
		Topics:   []string{"Derivatives", "Matrices", "Groups", "Limits", "Distributions", "Optimization"},
		Careers:  []string{"Mathematician", "Data Scientist", "Quant", "Actuary", "Research Scientist"},
		Skills:   []string{"Mathematical Modeling", "Python", "Statistics", "Logic", "Research"},
	},
	"Biology": {
		Category: "science",
		Courses:  []string{"Cell Biology", "Genetics", "Molecular Biology", "Ecology", "Biochemistry", "Microbiology", "Evolution", "Capstone: Research"},
		Topics:   []string{"DNA", "Gene Expression", "Ecosystems", "Protein Synthesis", "Metabolism", "Biodiversity"},
		Careers:  []string{"Biologist", "Research Scientist", "Biotech Scientist", "Lab Manager", "Science Writer"},
		Skills:   []string{"Lab Techniques", "Data Analysis", "Research", "Bioinformatics", "Scientific Writing"},
	},
	"Biotechnology": {
		Category: "science",
		Courses:  []string{"Biotechnology Fundamentals", "Genetic Engineering", "Bioprocessing", "Bioinformatics", "Immunology", "Pharma Biotech", "Biosafety", "Capstone: Biotech Project"},
		Topics:   []string{"PCR", "Cloning", "Fermentation", "Sequence Analysis", "Antibodies", "Drug Development"},
		Careers:  []string{"Biotech Scientist", "Research Associate", "Bioprocess Engineer", "Bioinformatician", "QA Specialist"},
		Skills:   []string{"Lab Techniques", "Bioinformatics", "Data Analysis", "GMP", "Research"},
	},
	"Mechanical Engineering": {
		Category: "engineering",
		Courses:  []string{"Engineering Mechanics", "Thermodynamics", "Fluid Mechanics", "Machine Design", "Manufacturing", "Heat Transfer", "Vibrations", "Capstone: Design Project"},
		Topics:   []string{"Stress Analysis", "Heat Exchangers", "CAD", "FEA", "CNC", "Kinematics"},
		Careers:  []string{"Mechanical Engineer", "Design Engineer", "Manufacturing Engineer", "Project Engineer", "R&D Engineer"},
		Skills:   []string{"CAD/CAM", "FEA", "Thermodynamics", "Manufacturing", "Project Management"},
	},
	"Civil Engineering": {
		Category: "engineering",
		Courses:  []string{"Structural Analysis", "Geotechnical Engineering", "Transportation", "Hydraulics", "Construction Management", "Environmental Engineering", "Design Codes", "Capstone: Infrastructure Project"},
		Topics:   []string{"Beam Design", "Soil Mechanics", "Highway Design", "Water Treatment", "Project Planning", "Safety"},
		Careers:  []string{"Civil Engineer", "Structural Engineer", "Project Manager", "Construction Manager", "Urban Planner"},
		Skills:   []string{"AutoCAD", "Structural Analysis", "Project Management", "Cost Estimation", "Safety"},
	},
	"Electrical Engineering": {
		Category: "engineering",
		Courses:  []string{"Circuit Theory", "Electronics", "Power Systems", "Control Systems", "Signal Processing", "Electrical Machines", "Power Electronics", "Capstone: EE Project"},
		Topics:   []string{"AC/DC Analysis", "Amplifiers", "Transformers", "PID Control", "DSP", "Motors"},
		Careers:  []string{"Electrical Engineer", "Power Engineer", "Control Engineer", "Design Engineer", "Systems Engineer"},
		Skills:   []string{"Circuit Design", "MATLAB", "Power Systems", "Control Systems", "Simulation"},
	},
	"Electronics": {
		Category: "engineering",
		Courses:  []string{"Electronic Devices", "Analog Circuits", "Digital Electronics", "Microprocessors", "Communication Systems", "Embedded Systems", "VLSI Basics", "Capstone: Electronics Project"},
		Topics:   []string{"Transistors", "Op-Amps", "Logic Gates", "Microcontrollers", "Modulation", "PCB Design"},
		Careers:  []string{"Electronics Engineer", "Embedded Engineer", "Hardware Engineer", "RF Engineer", "Design Engineer"},
		Skills:   []string{"Circuit Design", "PCB", "Embedded C", "Verilog", "Testing"},
	},
	"Robotics": {
		Category: "engineering",
		Courses:  []string{"Robot Mechanics", "Control Systems", "Sensors & Actuators", "Computer Vision", "Motion Planning", "AI for Robotics", "ROS", "Capstone: Robot Design"},
		Topics:   []string{"Kinematics", "PID Control", "SLAM", "Path Planning", "Object Detection", "Manipulation"},
		Careers:  []string{"Robotics Engineer", "Automation Engineer", "Control Engineer", "Research Scientist", "Systems Integrator"},
		Skills:   []string{"ROS", "Python", "Control Systems", "Computer Vision", "Mechanical Design"},
	},
	"Healthcare": {
		Category: "health",
		Courses:  []string{"Healthcare Systems", "Medical Terminology", "Health Informatics", "Public Health", "Healthcare Policy", "Clinical Practice", "Healthcare Management", "Capstone: Healthcare Project"},
		Topics:   []string{"Patient Care", "HIPAA", "EHR Systems", "Epidemiology", "Quality Improvement", "Leadership"},
		Careers:  []string{"Healthcare Administrator", "Health Informatics Specialist", "Clinical Manager", "Public Health Analyst", "Quality Manager"},
		Skills:   []string{"Healthcare Systems", "Data Analysis", "Compliance", "Leadership", "Communication"},
	},
	"Digital Marketing": {
		Category: "business",
		Courses:  []string{"Digital Marketing Fundamentals", "SEO/SEM", "Social Media Marketing", "Content Marketing", "Email Marketing", "Analytics", "E-commerce", "Capstone: Digital Campaign"},
		Topics:   []string{"Google Ads", "Facebook Ads", "SEO", "Content Strategy", "Analytics", "Conversion"},
		Careers:  []string{"Digital Marketing Manager", "SEO Specialist", "Social Media Manager", "Content Strategist", "Growth Hacker"},
		Skills:   []string{"Google Analytics", "SEO", "Social Media", "Content Creation", "Paid Ads"},
	},
	"Project Management": {
		Category: "business",
		Courses:  []string{"PM Fundamentals", "Agile/Scrum", "Risk Management", "Stakeholder Management", "Budgeting", "Quality Management", "PMP Prep", "Capstone: Project Simulation"},
		Topics:   []string{"WBS", "Gantt Charts", "Sprint Planning", "Risk Register", "Earned Value", "Retrospectives"},
		Careers:  []string{"Project Manager", "Scrum Master", "Program Manager", "PMO Director", "Agile Coach"},
		Skills:   []string{"Agile", "MS Project", "Communication", "Risk Management", "Leadership"},
	},
}
