// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности внутри одной сессии.
// Ноль зарезервирован под «нет сущности».
type EntityID uint64
