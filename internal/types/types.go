package types

// EntityID — уникальный идентификатор сущности в пределах одной симуляции.
type EntityID uint32
