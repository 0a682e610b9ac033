package kvo

import "errors"

var (
	// ErrMissingAttribute is returned by BindTo when the target object
	// never declared the target attribute.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrAlreadySourced is returned by BindTo when the source attribute
	// is already a non-root member of another group. Only the root of a
	// group may source a further bind.
	ErrAlreadySourced = errors.New("attribute already sourced a bind")

	// ErrUndefinedAttribute is returned by Set for a key the object
	// never declared.
	ErrUndefinedAttribute = errors.New("undefined attribute")

	// ErrNotBound is returned by Unbind when the attribute is Plain.
	ErrNotBound = errors.New("attribute not bound")

	// ErrBound is returned by Define when the attribute already
	// delegates to a shared cell.
	ErrBound = errors.New("attribute is bound")
)
