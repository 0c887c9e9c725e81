package generator

import "github.com/inaiurai/admindemo/internal/models"

var (
	firstNames = []string{
		"John", "Jane", "Michael", "Emily", "David", "Sarah", "Robert", "Lisa",
		"James", "Maria", "William", "Jennifer", "Daniel", "Olivia", "Thomas", "Sophia",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Thomas", "Moore", "Lee",
	}

	workspacePrefixes = []string{
		"Acme", "Globex", "Initech", "Umbrella", "Stark", "Wayne", "Hooli",
		"Vandelay", "Soylent", "Cyberdyne", "Tyrell", "Wonka",
	}
	workspaceSuffixes = []string{"Corp", "Labs", "Industries", "Group", "Solutions", "Systems", "Ventures"}

	featureNames = []string{
		"Advanced Analytics", "Single Sign-On", "Team Collaboration", "API Access",
		"Custom Reports", "Audit Logs", "Workflow Automation", "Data Export",
		"Two-Factor Authentication", "Real-time Dashboards", "Webhooks",
		"Role-Based Access", "Usage Billing", "Slack Integration", "AI Assistant",
	}

	apiKeyNames = []string{
		"Production API", "Development", "Staging", "Analytics Integration",
		"Mobile App", "Webhook Service", "CI Pipeline", "Data Sync",
	}
	rateLimits = []int{100, 500, 1000, 5000, 10000}

	notificationTitles = map[models.NotificationType][]string{
		models.NotificationTypeSystem:    {"Scheduled Maintenance", "Platform Update", "Service Restored"},
		models.NotificationTypeMarketing: {"New Year Offer", "Upgrade and Save 20%", "Join Our Webinar"},
		models.NotificationTypeBilling:   {"Invoice Available", "Payment Failed", "Plan Renewal Reminder"},
		models.NotificationTypeFeature:   {"New Feature: Custom Reports", "Dashboards Just Got Faster", "Try the AI Assistant"},
		models.NotificationTypeSecurity:  {"New Login Detected", "Password Policy Update", "Enable Two-Factor Authentication"},
	}
	notificationContent = map[models.NotificationType][]string{
		models.NotificationTypeSystem: {
			"We will perform scheduled maintenance this weekend. Expect brief interruptions.",
			"The platform has been updated with performance and stability improvements.",
		},
		models.NotificationTypeMarketing: {
			"Upgrade your plan this month and get two months free.",
			"Register for our upcoming webinar on scaling your team's workflows.",
		},
		models.NotificationTypeBilling: {
			"Your latest invoice is ready to download from the billing page.",
			"We could not process your last payment. Please update your payment method.",
		},
		models.NotificationTypeFeature: {
			"A new feature is now available in your workspace. Check it out today.",
			"We've shipped improvements based on your feedback.",
		},
		models.NotificationTypeSecurity: {
			"A new sign-in to your account was detected. If this wasn't you, reset your password.",
			"Protect your account by enabling two-factor authentication.",
		},
	}

	ticketSubjects = map[models.TicketCategory][]string{
		models.TicketCategoryTechnical:      {"Cannot connect to the API", "Dashboard loads slowly", "Webhook deliveries failing"},
		models.TicketCategoryBilling:        {"Charged twice this month", "Need a copy of my invoice", "Question about plan pricing"},
		models.TicketCategoryAccount:        {"Cannot reset my password", "Transfer workspace ownership", "Delete my account"},
		models.TicketCategoryFeatureRequest: {"Request: dark mode", "Request: export to CSV", "Request: more granular roles"},
		models.TicketCategoryBug:            {"Charts show wrong totals", "Error when inviting teammates", "Notifications sent twice"},
	}
	ticketContent = map[models.TicketCategory][]string{
		models.TicketCategoryTechnical: {
			"Requests to the API time out after a few seconds. This started yesterday.",
			"Our integration stopped working after the last update. Can you take a look?",
		},
		models.TicketCategoryBilling: {
			"I see two charges on my card for the same billing period.",
			"Please send me the invoices for the last quarter for our accounting team.",
		},
		models.TicketCategoryAccount: {
			"I no longer have access to the email on this account and need help.",
			"We need to move this workspace to a different owner.",
		},
		models.TicketCategoryFeatureRequest: {
			"It would be great to have this in the product. Our whole team would use it.",
			"Is this on the roadmap? We'd be happy to beta test it.",
		},
		models.TicketCategoryBug: {
			"Steps to reproduce: open the page, apply a filter, refresh. The numbers change.",
			"This happens every time for some of our users. Screenshots attached.",
		},
	}
	supportAgents  = []string{"Alex Support", "Sam Support", "Jordan Support", "Taylor Support"}
	supportReplies = []string{
		"Thanks for reaching out. We're looking into this now.",
		"Could you share more details so we can reproduce the issue?",
		"We've deployed a fix. Please let us know if the problem persists.",
	}
	customerReplies = []string{
		"Thanks, here are the details you asked for.",
		"It's still happening on our side.",
		"That fixed it, thank you!",
	}
)
