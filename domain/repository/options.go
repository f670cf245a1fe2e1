package repository

// WithID filters on the key column.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithIDIn filters on a set of keys.
func WithIDIn(ids []int64) Option {
	return WithConditionIn("id", ids)
}

// WithNameContaining matches rows whose name contains text. Case matters.
func WithNameContaining(text string) Option {
	return WithContains("name", text)
}

// WithInsertionOrder sorts by key. Rows keep their source keys, so this is
// the order they were loaded in.
func WithInsertionOrder() Option {
	return WithOrderAsc("id")
}
