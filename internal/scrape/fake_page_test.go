package scrape

import (
	"errors"
	"fmt"
	"time"
)

// fakePage implements Page over in-memory documents keyed by URL, standing
// in for the browser in pipeline tests.
type fakePage struct {
	docs    map[string]*fakeDoc
	current *fakeDoc

	// calls records every selector handed to Count/Text/Attr, letting
	// tests assert that fallback stops at the first success.
	calls []string

	navErr map[string]error
}

type fakeDoc struct {
	elems map[string][]fakeElem
	errs  map[string]error
}

type fakeElem struct {
	text    string
	attrs   map[string]string
	attrErr error
}

func newFakePage() *fakePage {
	return &fakePage{
		docs:   map[string]*fakeDoc{},
		navErr: map[string]error{},
	}
}

func (f *fakePage) addDoc(url string) *fakeDoc {
	d := &fakeDoc{
		elems: map[string][]fakeElem{},
		errs:  map[string]error{},
	}
	f.docs[url] = d
	return d
}

func (d *fakeDoc) add(sel, text string, attrs map[string]string) {
	d.elems[sel] = append(d.elems[sel], fakeElem{text: text, attrs: attrs})
}

func (d *fakeDoc) addBroken(sel string, err error) {
	d.errs[sel] = err
}

func (f *fakePage) Navigate(url string) error {
	if err := f.navErr[url]; err != nil {
		return err
	}
	d, ok := f.docs[url]
	if !ok {
		return fmt.Errorf("no such page: %s", url)
	}
	f.current = d
	return nil
}

func (f *fakePage) WaitVisible(sel string, _ time.Duration) error {
	if f.current == nil {
		return errors.New("no page loaded")
	}
	if len(f.current.elems[sel]) == 0 {
		return fmt.Errorf("timeout waiting for %s", sel)
	}
	return nil
}

func (f *fakePage) Settle() error { return nil }

func (f *fakePage) Count(sel string) (int, error) {
	f.calls = append(f.calls, sel)
	if f.current == nil {
		return 0, errors.New("no page loaded")
	}
	if err := f.current.errs[sel]; err != nil {
		return 0, err
	}
	return len(f.current.elems[sel]), nil
}

func (f *fakePage) Text(sel string, i int) (string, error) {
	e, err := f.elem(sel, i)
	if err != nil {
		return "", err
	}
	return e.text, nil
}

func (f *fakePage) Attr(sel string, i int, name string) (string, bool, error) {
	e, err := f.elem(sel, i)
	if err != nil {
		return "", false, err
	}
	if e.attrErr != nil {
		return "", false, e.attrErr
	}
	v, ok := e.attrs[name]
	return v, ok, nil
}

func (f *fakePage) elem(sel string, i int) (fakeElem, error) {
	f.calls = append(f.calls, sel)
	if f.current == nil {
		return fakeElem{}, errors.New("no page loaded")
	}
	if err := f.current.errs[sel]; err != nil {
		return fakeElem{}, err
	}
	matches := f.current.elems[sel]
	if i >= len(matches) {
		return fakeElem{}, fmt.Errorf("no element %d for %s", i, sel)
	}
	return matches[i], nil
}

func (f *fakePage) called(sel string) bool {
	for _, c := range f.calls {
		if c == sel {
			return true
		}
	}
	return false
}
