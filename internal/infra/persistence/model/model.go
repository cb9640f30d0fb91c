// Package model holds the GORM table mappings of the persistence layer.
package model

// All lists every model for schema migration and code generation.
func All() []any {
	return []any{
		&ProfileModel{},
		&NotificationModel{},
		&DeviceModel{},
		&DeviceAssignmentModel{},
		&AuditLogModel{},
		&AssetModel{},
		&AssetIssueModel{},
		&FeedbackModel{},
		&DocumentationModel{},
		&PushRegistrationModel{},
	}
}
