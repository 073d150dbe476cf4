package model

import "slices"

/*

A FilteredView is the read-only projection of an InternshipBook that presentation code observes.

It holds the book by reference and materializes the matching Internships, in book order, each time
the ModelManager calls refresh. The manager refreshes after every mutation, before returning, so a
reader going through the manager never sees a stale view. Listeners run synchronously at the end of
each refresh.

*/

type FilteredView struct {
	book      *InternshipBook
	predicate Predicate
	items     []Internship
	listeners []func()
}

func newFilteredView(book *InternshipBook, p Predicate) *FilteredView {
	v := &FilteredView{book: book, predicate: p}
	v.rederive()
	return v
}

// setPredicate swaps the predicate; the next refresh applies it
func (v *FilteredView) setPredicate(p Predicate) {
	v.predicate = p
}

func (v *FilteredView) refresh() {
	v.rederive()
	for _, l := range v.listeners {
		l()
	}
}

func (v *FilteredView) rederive() {
	items := make([]Internship, 0, len(v.book.internships))
	for _, i := range v.book.internships {
		if v.predicate(i) {
			items = append(items, i)
		}
	}
	v.items = items
}

// AddListener registers f to run after every refresh
func (v *FilteredView) AddListener(f func()) {
	if f != nil {
		v.listeners = append(v.listeners, f)
	}
}

func (v *FilteredView) Len() int { return len(v.items) }

// Get returns the internship at (0-based) index and whether index is in range
func (v *FilteredView) Get(index int) (Internship, bool) {
	if index < 0 || index >= len(v.items) {
		return Internship{}, false
	}
	return v.items[index], true
}

// Items returns a copy of the current contents
func (v *FilteredView) Items() []Internship { return slices.Clone(v.items) }

func (v *FilteredView) Equal(other *FilteredView) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	return slices.EqualFunc(v.items, other.items, Internship.Equal)
}
