package main

type SkillCategory struct {
	Name  string
	Items []string
}

type Project struct {
	Title       string
	Description string
}

type ExperienceEntry struct {
	Company  string
	Title    string
	Duration string
	Details  []string
}

// Section is one anchor target on the page.
type Section struct {
	ID    string
	Label string
}

// ContactLink is an outbound contact link. External links open in a new
// browsing context without an opener reference.
type ContactLink struct {
	Href     string
	Label    string
	Icon     string
	External bool
}

var skills = []SkillCategory{
	{Name: "Programming", Items: []string{"Python", "C++", "C", "Java", "SQL"}},
	{Name: "Tools", Items: []string{
		"Excel",
		"Tableau",
		"Pandas",
		"Matplotlib",
		"Flask",
		"React.js",
		"Tailwind CSS",
		"Git",
		"Nginx",
	}},
	{Name: "SoftSkills", Items: []string{"Communication", "Problem Solving", "Time Management", "Creative Thinking"}},
}

var projects = []Project{
	{
		Title:       "Heart Disease Detection",
		Description: "Developed a machine learning pipeline using Python and Scikit-learn to predict heart disease with 88% accuracy. This project involved multiple patient data, detailed EDA, and model optimization techniques.",
	},
	{
		Title:       "Engage Court Booking App",
		Description: "Built a user-friendly court reservation platform using Flutterflow. Designed intuitive booking flows, connected it to a backend database, and created an admin dashboard for real-time management.",
	},
	{
		Title:       "Data Analytics Dashboards",
		Description: "Cleaned, transformed, and visualized complex datasets using Python, Excel, and Tableau. Created interactive dashboards that communicated trends, insights, and KPIs for decision-making.",
	},
}

var experiences = []ExperienceEntry{
	{
		Company:  "Emirates Airline",
		Title:    "Automation Intern",
		Duration: "Feb 2025 – Present",
		Details: []string{
			"Developed automation tools and full-stack web apps using Flask, React.js, and Tailwind CSS",
			"Optimized SQL queries and managed data pipelines with MariaDB",
			"Streamlined DevOps with CI/CD pipelines and Git workflows",
			"Configured Nginx for performance optimization (load balancing, caching, failover)",
			"Contributed to a Smart Crisis Command Hub for real-time network event tracking",
			"Worked on Generative AI features to support operational tools and automation",
		},
	},
	{
		Company:  "Cognicx IT Solutions",
		Title:    "Machine Learning Intern",
		Duration: "Aug 2024 – Sept 2024",
		Details: []string{
			"Built ML classification models using Python and TensorFlow",
			"Cleaned and preprocessed datasets using Pandas for better model performance",
			"Created a sentiment analysis model to classify customer feedback as positive or negative",
			"Designed a basic UI for real-time feedback input and prediction display",
			"Gained exposure to model deployment and evaluation in production scenarios",
		},
	},
}

var sections = []Section{
	{ID: "about", Label: "About"},
	{ID: "skills", Label: "Skills"},
	{ID: "experience", Label: "Experience"},
	{ID: "projects", Label: "Projects"},
	{ID: "certifications", Label: "Certifications"},
	{ID: "contact", Label: "Contact"},
}

var contactLinks = []ContactLink{
	{Href: "mailto:parvsatru02@gmail.com", Label: "Send Email", Icon: "email"},
	{Href: "https://www.linkedin.com/in/parvathi-satrugnaraj/", Label: "LinkedIn Profile", Icon: "linkedin", External: true},
	{Href: "https://github.com/Parvsatru02", Label: "GitHub Profile", Icon: "github", External: true},
}

// Both internships get the highlight heading colour.
var highlightedCompanies = [...]string{"Emirates Airline", "Cognicx IT Solutions"}

// IsHighlighted reports whether company exactly matches a highlighted name.
func IsHighlighted(company string) bool {
	for _, c := range highlightedCompanies {
		if company == c {
			return true
		}
	}
	return false
}

// Skills returns the skill categories in display order.
func Skills() []SkillCategory {
	out := make([]SkillCategory, len(skills))
	for i, s := range skills {
		out[i] = SkillCategory{Name: s.Name, Items: append([]string(nil), s.Items...)}
	}
	return out
}

func Projects() []Project {
	return append([]Project(nil), projects...)
}

// Experiences returns the experience entries, most recent first.
func Experiences() []ExperienceEntry {
	out := make([]ExperienceEntry, len(experiences))
	for i, e := range experiences {
		e.Details = append([]string(nil), e.Details...)
		out[i] = e
	}
	return out
}

func Sections() []Section {
	return append([]Section(nil), sections...)
}

func ContactLinks() []ContactLink {
	return append([]ContactLink(nil), contactLinks...)
}
