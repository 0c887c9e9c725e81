package models

import "slices"

// User role and status enums.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleUser    UserRole = "user"
)

var UserRoles = []UserRole{UserRoleAdmin, UserRoleManager, UserRoleUser}

func (r UserRole) Valid() bool { return slices.Contains(UserRoles, r) }

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

var UserStatuses = []UserStatus{UserStatusActive, UserStatusInactive, UserStatusPending}

func (s UserStatus) Valid() bool { return slices.Contains(UserStatuses, s) }

// Workspace status and industry enums.
type WorkspaceStatus string

const (
	WorkspaceStatusActive   WorkspaceStatus = "active"
	WorkspaceStatusArchived WorkspaceStatus = "archived"
	WorkspaceStatusTrial    WorkspaceStatus = "trial"
)

var WorkspaceStatuses = []WorkspaceStatus{WorkspaceStatusActive, WorkspaceStatusArchived, WorkspaceStatusTrial}

func (s WorkspaceStatus) Valid() bool { return slices.Contains(WorkspaceStatuses, s) }

type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinance       Industry = "finance"
	IndustryEducation     Industry = "education"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryMedia         Industry = "media"
)

var Industries = []Industry{
	IndustryTechnology, IndustryHealthcare, IndustryFinance, IndustryEducation,
	IndustryRetail, IndustryManufacturing, IndustryMedia,
}

func (i Industry) Valid() bool { return slices.Contains(Industries, i) }

// Subscription enums.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanStarter    Plan = "starter"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

var Plans = []Plan{PlanFree, PlanStarter, PlanPro, PlanEnterprise}

func (p Plan) Valid() bool { return slices.Contains(Plans, p) }

// Price is the monthly list price of the plan in whole dollars.
func (p Plan) Price() int {
	switch p {
	case PlanStarter:
		return 19
	case PlanPro:
		return 49
	case PlanEnterprise:
		return 99
	default:
		return 0
	}
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
)

var SubscriptionStatuses = []SubscriptionStatus{
	SubscriptionStatusActive, SubscriptionStatusCanceled, SubscriptionStatusPastDue, SubscriptionStatusTrialing,
}

func (s SubscriptionStatus) Valid() bool { return slices.Contains(SubscriptionStatuses, s) }

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodPayPal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodInvoice      PaymentMethod = "invoice"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodBankTransfer, PaymentMethodInvoice,
}

func (m PaymentMethod) Valid() bool { return slices.Contains(PaymentMethods, m) }

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

var InvoiceStatuses = []InvoiceStatus{InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusFailed}

func (s InvoiceStatus) Valid() bool { return slices.Contains(InvoiceStatuses, s) }

// Feature enums.
type FeatureType string

const (
	FeatureTypeCore       FeatureType = "core"
	FeatureTypeBeta       FeatureType = "beta"
	FeatureTypePremium    FeatureType = "premium"
	FeatureTypeEnterprise FeatureType = "enterprise"
)

var FeatureTypes = []FeatureType{FeatureTypeCore, FeatureTypeBeta, FeatureTypePremium, FeatureTypeEnterprise}

func (t FeatureType) Valid() bool { return slices.Contains(FeatureTypes, t) }

// AvailablePlans returns the plans that unlock a feature of this type.
func (t FeatureType) AvailablePlans() []Plan {
	switch t {
	case FeatureTypeCore:
		return []Plan{PlanFree, PlanStarter, PlanPro, PlanEnterprise}
	case FeatureTypeBeta, FeatureTypePremium:
		return []Plan{PlanPro, PlanEnterprise}
	case FeatureTypeEnterprise:
		return []Plan{PlanEnterprise}
	default:
		return nil
	}
}

type FeatureCategory string

const (
	FeatureCategoryAnalytics     FeatureCategory = "analytics"
	FeatureCategorySecurity      FeatureCategory = "security"
	FeatureCategoryCollaboration FeatureCategory = "collaboration"
	FeatureCategoryIntegration   FeatureCategory = "integration"
	FeatureCategoryAutomation    FeatureCategory = "automation"
	FeatureCategoryBilling       FeatureCategory = "billing"
)

var FeatureCategories = []FeatureCategory{
	FeatureCategoryAnalytics, FeatureCategorySecurity, FeatureCategoryCollaboration,
	FeatureCategoryIntegration, FeatureCategoryAutomation, FeatureCategoryBilling,
}

func (c FeatureCategory) Valid() bool { return slices.Contains(FeatureCategories, c) }

// API key enums.
type APIKeyStatus string

const (
	APIKeyStatusActive  APIKeyStatus = "active"
	APIKeyStatusRevoked APIKeyStatus = "revoked"
	APIKeyStatusExpired APIKeyStatus = "expired"
)

var APIKeyStatuses = []APIKeyStatus{APIKeyStatusActive, APIKeyStatusRevoked, APIKeyStatusExpired}

func (s APIKeyStatus) Valid() bool { return slices.Contains(APIKeyStatuses, s) }

type Scope string

const (
	ScopeRead  Scope = "read"
	ScopeWrite Scope = "write"
	ScopeAdmin Scope = "admin"
)

var Scopes = []Scope{ScopeRead, ScopeWrite, ScopeAdmin}

func (s Scope) Valid() bool { return slices.Contains(Scopes, s) }

// Notification enums.
type NotificationType string

const (
	NotificationTypeSystem    NotificationType = "system"
	NotificationTypeMarketing NotificationType = "marketing"
	NotificationTypeBilling   NotificationType = "billing"
	NotificationTypeFeature   NotificationType = "feature"
	NotificationTypeSecurity  NotificationType = "security"
)

var NotificationTypes = []NotificationType{
	NotificationTypeSystem, NotificationTypeMarketing, NotificationTypeBilling,
	NotificationTypeFeature, NotificationTypeSecurity,
}

func (t NotificationType) Valid() bool { return slices.Contains(NotificationTypes, t) }

type NotificationStatus string

const (
	NotificationStatusDraft     NotificationStatus = "draft"
	NotificationStatusScheduled NotificationStatus = "scheduled"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusCanceled  NotificationStatus = "canceled"
)

var NotificationStatuses = []NotificationStatus{
	NotificationStatusDraft, NotificationStatusScheduled, NotificationStatusSent, NotificationStatusCanceled,
}

func (s NotificationStatus) Valid() bool { return slices.Contains(NotificationStatuses, s) }

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelInApp Channel = "in-app"
	ChannelPush  Channel = "push"
	ChannelSMS   Channel = "sms"
)

var Channels = []Channel{ChannelEmail, ChannelInApp, ChannelPush, ChannelSMS}

func (c Channel) Valid() bool { return slices.Contains(Channels, c) }

type Audience string

const (
	AudienceAllUsers        Audience = "all_users"
	AudienceAdmins          Audience = "admins"
	AudienceFreeUsers       Audience = "free_users"
	AudiencePaidUsers       Audience = "paid_users"
	AudienceEnterpriseUsers Audience = "enterprise_users"
)

var Audiences = []Audience{
	AudienceAllUsers, AudienceAdmins, AudienceFreeUsers, AudiencePaidUsers, AudienceEnterpriseUsers,
}

func (a Audience) Valid() bool { return slices.Contains(Audiences, a) }

// Support ticket enums.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

var TicketStatuses = []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed}

func (s TicketStatus) Valid() bool { return slices.Contains(TicketStatuses, s) }

// Done reports whether the status implies the ticket was resolved.
func (s TicketStatus) Done() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

var TicketPriorities = []TicketPriority{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent}

func (p TicketPriority) Valid() bool { return slices.Contains(TicketPriorities, p) }

type TicketCategory string

const (
	TicketCategoryTechnical      TicketCategory = "technical"
	TicketCategoryBilling        TicketCategory = "billing"
	TicketCategoryAccount        TicketCategory = "account"
	TicketCategoryFeatureRequest TicketCategory = "feature_request"
	TicketCategoryBug            TicketCategory = "bug"
)

var TicketCategories = []TicketCategory{
	TicketCategoryTechnical, TicketCategoryBilling, TicketCategoryAccount,
	TicketCategoryFeatureRequest, TicketCategoryBug,
}

func (c TicketCategory) Valid() bool { return slices.Contains(TicketCategories, c) }

type ResponseAuthor string

const (
	ResponseAuthorSupport  ResponseAuthor = "support"
	ResponseAuthorCustomer ResponseAuthor = "customer"
)

func (a ResponseAuthor) Valid() bool {
	return a == ResponseAuthorSupport || a == ResponseAuthorCustomer
}
