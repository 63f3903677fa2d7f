package services

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"getjoy-backend/client"
)

// fakeStore is an in-memory stand-in for the collection store, speaking
// just enough of its wire contract for service tests: unfiltered and
// exact-match filtered lists, by-id gets, create, update, delete. It also
// counts requests per method+collection so tests can assert which calls a
// service did (or didn't) make.
type fakeStore struct {
	mu          sync.Mutex
	collections map[string][]map[string]any
	requests    map[string]int
	failing     map[string]bool
	nextID      int
	srv         *httptest.Server
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	f := &fakeStore{
		collections: map[string][]map[string]any{},
		requests:    map[string]int{},
		failing:     map[string]bool{},
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeStore) client() *client.Client {
	return client.New(f.srv.URL, 2*time.Second)
}

func (f *fakeStore) add(collection string, doc map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.collections[collection] = append(f.collections[collection], doc)
}

func (f *fakeStore) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[key]
}

// failOn makes every request matching "METHOD collection" answer 500.
func (f *fakeStore) failOn(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[key] = true
}

func (f *fakeStore) find(collection, id string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.collections[collection] {
		if fakeValue(doc["id"]) == id {
			return doc
		}
	}
	return nil
}

func (f *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	collection := parts[0]
	id := ""
	if len(parts) > 1 {
		id = parts[1]
	}

	f.mu.Lock()
	f.requests[r.Method+" "+collection]++
	failing := f.failing[r.Method+" "+collection]
	f.mu.Unlock()

	if failing {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && id == "":
		f.list(w, r, collection)
	case r.Method == http.MethodGet:
		f.get(w, collection, id)
	case r.Method == http.MethodPost:
		f.create(w, r, collection)
	case r.Method == http.MethodPut:
		f.update(w, r, collection, id)
	case r.Method == http.MethodDelete:
		f.remove(w, collection, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeStore) list(w http.ResponseWriter, r *http.Request, collection string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []map[string]any{}
	for _, doc := range f.collections[collection] {
		match := true
		for key, values := range r.URL.Query() {
			if len(values) == 0 || fakeValue(doc[key]) != values[0] {
				match = false
				break
			}
		}
		if match {
			out = append(out, doc)
		}
	}
	json.NewEncoder(w).Encode(out)
}

func (f *fakeStore) get(w http.ResponseWriter, collection, id string) {
	doc := f.find(collection, id)
	if doc == nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{})
		return
	}
	json.NewEncoder(w).Encode(doc)
}

func (f *fakeStore) create(w http.ResponseWriter, r *http.Request, collection string) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	if fakeValue(doc["id"]) == "" {
		f.nextID++
		doc["id"] = fmt.Sprintf("fk-%d", f.nextID)
	}
	f.collections[collection] = append(f.collections[collection], doc)
	f.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(doc)
}

func (f *fakeStore) update(w http.ResponseWriter, r *http.Request, collection, id string) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.collections[collection] {
		if fakeValue(existing["id"]) == id {
			doc["id"] = existing["id"]
			f.collections[collection][i] = doc
			json.NewEncoder(w).Encode(doc)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *fakeStore) remove(w http.ResponseWriter, collection, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	docs := f.collections[collection]
	for i, existing := range docs {
		if fakeValue(existing["id"]) == id {
			f.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			json.NewEncoder(w).Encode(map[string]any{})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func fakeValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
