package leverage

// Session ties a Book to the Store it was loaded from.
type Session struct {
	*Book
	store Store
}

// Open loads the book from store. An absent snapshot opens an empty book.
func Open(store Store, opts Options) *Session {
	r, ok := store.Load()
	if !ok {
		r = nil
	}
	return &Session{Book: Restore(r, opts), store: store}
}

// Save persists the book now. A failure leaves the book untouched, it
// remains the source of truth until the next successful save.
func (s *Session) Save() error {
	return s.store.Save(s.Record())
}
