// Package seed implements the one-shot demo data job: it provisions demo
// users in the external identity service, clears the prompts table, and
// inserts a fixed set of prompt templates distributed across the new users.
package seed

import "github.com/promptkeep/promptkeep/models"

// DefaultBlockSize is the number of consecutive templates assigned to each
// demo user when no explicit block size is configured.
const DefaultBlockSize = 3

// DemoUsers is the fixed set of accounts provisioned by the seed job. The
// +clerk_test address suffix marks them as test users for the identity
// service.
var DemoUsers = []models.DemoUser{
	{
		EmailAddresses: []string{"user1+clerk_test@example.com"},
		Password:       "testPassword123!",
		FirstName:      "Test",
		LastName:       "User1",
	},
	{
		EmailAddresses: []string{"user2+clerk_test@example.com"},
		Password:       "testPassword123!",
		FirstName:      "Test",
		LastName:       "User2",
	},
	{
		EmailAddresses: []string{"user3+clerk_test@example.com"},
		Password:       "testPassword123!",
		FirstName:      "Test",
		LastName:       "User3",
	},
}

// Templates is the fixed set of prompt templates inserted by the seed job, in
// assignment order.
var Templates = []models.PromptTemplate{
	{
		Name:        "Code Explainer",
		Description: "Explains code in simple terms",
		Content:     "Please explain this code in simple terms, as if you're teaching a beginner programmer:",
	},
	{
		Name:        "Bug Finder",
		Description: "Helps identify bugs in code",
		Content:     "Review this code and identify potential bugs, performance issues, or security vulnerabilities:",
	},
	{
		Name:        "Feature Planner",
		Description: "Helps plan new features",
		Content:     "Help me plan the implementation of this feature. Consider edge cases, potential challenges, and best practices:",
	},
	{
		Name:        "SQL Query Helper",
		Description: "Assists with SQL queries",
		Content:     "Help me write an efficient SQL query to accomplish the following task:",
	},
	{
		Name:        "API Documentation",
		Description: "Generates API documentation",
		Content:     "Generate clear and comprehensive documentation for this API endpoint, including parameters, responses, and examples:",
	},
	{
		Name:        "Code Refactorer",
		Description: "Suggests code improvements",
		Content:     "Review this code and suggest improvements for better readability, maintainability, and performance:",
	},
	{
		Name:        "Test Case Generator",
		Description: "Creates test cases",
		Content:     "Generate comprehensive test cases for this function, including edge cases and error scenarios:",
	},
	{
		Name:        "UI/UX Reviewer",
		Description: "Reviews UI/UX design",
		Content:     "Review this UI design and provide feedback on usability, accessibility, and user experience:",
	},
	{
		Name:        "Git Command Helper",
		Description: "Helps with Git commands",
		Content:     "What Git commands should I use to accomplish the following task:",
	},
}
