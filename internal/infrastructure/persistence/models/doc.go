// Package models contains GORM persistence models that map to database tables.
// They are kept apart from the domain entities so the domain stays free of
// ORM tags. Each model converts to and from its entity with ToDomain/FromDomain.
package models
