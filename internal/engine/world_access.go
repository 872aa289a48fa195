package engine

// WorldAccess gives components the level geometry without importing the
// world package.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
}
