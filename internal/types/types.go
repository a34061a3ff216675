// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности. Никогда не переиспользуется,
// 0 означает «нет сущности».
type EntityID uint64
