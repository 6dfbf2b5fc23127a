// Package model defines the Contact entity consumed by renderers. Scalar
// fields are pointers so absent values (nil) stay distinct from empty strings;
// renderers skip nil fields and emit empty ones. Collections may be nil, which
// is treated exactly like an empty slice. Phone, IM, and address types are
// enumerations carrying a display label and a CSS class so markup emitters can
// style each facet without switch statements of their own.
package model
