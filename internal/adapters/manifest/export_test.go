package manifest

// Parses returns how many manifest files the resolver has parsed.
func (r *Resolver) Parses() int64 {
	return r.parses.Load()
}
