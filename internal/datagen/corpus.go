package datagen

// Name pools for the generated workspace. Entity generators sample or
// cycle through these; none of them are user-configurable.

var companyNames = []string{
	"Acme Corporation",
	"TechVision Inc",
	"DataFlow Systems",
	"CloudScale Solutions",
	"InnovateLabs",
}

var companyDomains = []string{
	"acmecorp.com",
	"techvision.io",
	"dataflow.com",
	"cloudscale.net",
	"innovatelabs.io",
}

// Team names pair positionally with their types.
var teamNames = []string{
	"Engineering", "Product", "Marketing", "Sales", "Customer Success",
	"Design", "Operations", "Finance", "HR", "Legal",
}

var teamTypes = []string{
	"engineering", "product", "marketing", "sales", "support",
	"design", "operations", "finance", "hr", "legal",
}

var firstNames = []string{
	"Alice", "Bob", "Charlie", "Diana", "Ethan", "Fiona", "George", "Hannah",
	"Ian", "Julia", "Kevin", "Laura", "Michael", "Nina", "Oliver", "Patricia",
	"Quinn", "Rachel", "Steve", "Tara", "Uma", "Victor", "Wendy", "Xavier",
	"Yara", "Zachary", "Amy", "Ben", "Claire", "David", "Emma", "Frank",
	"Grace", "Henry", "Iris", "Jack", "Kate", "Liam", "Mia", "Nathan",
	"Olivia", "Paul", "Rosa", "Sam", "Tina", "Ursula", "Vera", "Will", "Zoe",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Walker", "Hall",
	"Allen", "Young", "King", "Wright", "Scott", "Green", "Baker", "Adams",
	"Nelson", "Carter", "Mitchell", "Roberts", "Turner", "Phillips", "Campbell",
	"Parker", "Evans", "Edwards", "Collins", "Stewart", "Morris", "Rogers", "Reed",
}

// Project names come from a template filled with a quarter, year or
// phase descriptor.
var projectTemplates = []string{
	"%s Planning",
	"%s Product Launch",
	"%s Marketing Campaign",
	"Website Redesign %s",
	"%s Integration Project",
	"Customer Onboarding %s",
	"%s Feature Development",
	"Bug Fixes - %s",
	"Infrastructure Upgrade %s",
	"Sales Enablement %s",
	"%s Documentation",
	"Mobile App - %s",
	"API Development %s",
	"Security Audit %s",
	"Performance Optimization %s",
}

var projectFillers = []string{
	"Q1", "Q2", "Q3", "Q4",
	"2024", "2025", "2026",
	"Sprint", "Phase 1", "Phase 2", "v1.0", "v2.0", "Alpha", "Beta", "Pilot",
}

var sectionNames = []string{
	"To Do", "In Progress", "In Review", "Done", "Backlog", "Blocked",
	"Ready for Testing", "Planning", "Research", "Design", "Development",
	"Testing", "Deployment",
}

var taskTemplates = []string{
	"Implement %s feature",
	"Fix bug in %s",
	"Review %s documentation",
	"Test %s functionality",
	"Design %s interface",
	"Refactor %s module",
	"Update %s configuration",
	"Deploy %s to production",
	"Optimize %s performance",
	"Research %s solution",
	"Write tests for %s",
	"Create %s mockups",
	"Analyze %s metrics",
	"Set up %s integration",
	"Document %s API",
	"Migrate %s database",
	"Improve %s UX",
	"Add %s validation",
	"Configure %s monitoring",
	"Prepare %s presentation",
}

var taskComponents = []string{
	"authentication", "dashboard", "API", "database", "frontend", "backend",
	"payment system", "user profile", "search", "notifications", "reports",
	"admin panel", "mobile app", "analytics", "settings", "workflow",
	"integration", "permissions", "logging", "caching", "email system",
}

var subtaskNames = []string{
	"Research approach",
	"Create design mockup",
	"Write unit tests",
	"Update documentation",
	"Code review",
	"QA testing",
	"Deploy to staging",
	"Get stakeholder approval",
	"Update dependencies",
	"Refactor code",
	"Add error handling",
	"Performance testing",
	"Security review",
	"Write changelog",
	"Update API docs",
}

// Comment bodies; {name} and {number} are filled at generation time.
var commentTemplates = []string{
	"This looks good to me, approved!",
	"Can we discuss this in tomorrow's standup?",
	"I've made some changes, please review.",
	"Blocked on the API integration.",
	"Need clarification on requirements.",
	"Great work! Shipped to production.",
	"Found an edge case we need to handle.",
	"Testing completed successfully.",
	"Added to sprint backlog.",
	"Reassigning to {name} for review.",
	"Updated based on feedback.",
	"This is urgent, prioritizing now.",
	"Waiting on design mockups.",
	"Dependencies have been updated.",
	"Documentation is complete.",
	"Let's break this into smaller tasks.",
	"Related to ticket #{number}.",
	"Performance looks good after optimization.",
	"Security review passed.",
	"Merged PR, closing task.",
}

var tagNames = []string{
	"bug", "feature", "enhancement", "urgent", "high-priority",
	"low-priority", "documentation", "design", "backend", "frontend",
	"mobile", "api", "security", "performance", "tech-debt",
	"refactoring", "testing", "blocked", "needs-review", "customer-request",
	"internal", "ui/ux", "accessibility", "infrastructure", "deployment",
}

// Custom field catalogue. Fields with an option set are single-selects;
// number fields derive their values from the field's name.
type fieldTemplate struct {
	name      string
	fieldType string
	options   []string
}

var fieldCatalogue = []fieldTemplate{
	{name: "Story Points", fieldType: "number"},
	{name: "Sprint", fieldType: "text", options: []string{"Sprint 1", "Sprint 2", "Sprint 3", "Sprint 4", "Sprint 5"}},
	{name: "Epic", fieldType: "text", options: []string{"User Management", "Payment System", "Analytics Dashboard", "Mobile App", "API v2"}},
	{name: "Effort Estimate", fieldType: "number"},
	{name: "Department", fieldType: "single_select", options: []string{"Engineering", "Product", "Marketing", "Sales", "Support"}},
	{name: "Severity", fieldType: "single_select", options: []string{"Critical", "High", "Medium", "Low"}},
	{name: "Release Version", fieldType: "text", options: []string{"v1.0", "v1.1", "v2.0", "v2.1", "v3.0"}},
	{name: "Customer Impact", fieldType: "single_select", options: []string{"High", "Medium", "Low", "None"}},
	{name: "Progress", fieldType: "number"},
	{name: "Cost Center", fieldType: "single_select", options: []string{"R&D", "Operations", "Sales", "Marketing"}},
}

var storyPointScale = []int{1, 2, 3, 5, 8, 13}
