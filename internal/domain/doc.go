// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/property, domain/client,
// domain/task, domain/collaborator). This root package holds the vocabulary
// shared by all of them: sentinel errors, validation helpers, enumeration
// choices, money, and user-facing message templates.
package domain
