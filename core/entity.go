package core

// Entity is an opaque handle for one game object
// The newtype blocks accidental arithmetic and cross-domain id mixing;
// ids are allocated by the engine, strictly increasing and never reused
type Entity uint64

// NoEntity is the zero handle; no live entity ever carries it
const NoEntity Entity = 0
