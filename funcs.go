package smalliter

// Mapper transforms a source element into a target element.
type Mapper[SRC any, TGT any] func(src SRC) TGT

// Predicate reports whether an element should be kept.
type Predicate[SRC any] Mapper[SRC, bool]
