package lsp

import (
	"fmt"
	"sync"
	"testing"
)

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///palette.hcl"

	if _, ok := store.Get(uri); ok {
		t.Fatal("Get() found a document before Set")
	}
	if store.Result(uri) != nil {
		t.Fatal("Result() before Set should be nil")
	}

	first := &AnalysisResult{}
	store.Set(uri, "version 1", first)
	content, ok := store.Get(uri)
	if !ok || content != "version 1" {
		t.Errorf("Get() = %q, %v; want version 1", content, ok)
	}
	if store.Result(uri) != first {
		t.Error("Result() does not return the stored analysis")
	}

	second := &AnalysisResult{}
	store.Set(uri, "version 2", second)
	if content, _ := store.Get(uri); content != "version 2" {
		t.Errorf("Get() after update = %q", content)
	}
	if store.Result(uri) != second {
		t.Error("Result() after update returns the old analysis")
	}

	store.Close(uri)
	if _, ok := store.Get(uri); ok {
		t.Error("Get() found the document after Close")
	}
}

func TestDocumentStoreConcurrent(t *testing.T) {
	store := NewDocumentStore()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uri := fmt.Sprintf("file:///%d.hcl", i%5)
			store.Set(uri, fmt.Sprint(i), nil)
			store.Get(uri)
			store.Result(uri)
		}()
	}
	wg.Wait()

	for i := range 5 {
		if _, ok := store.Get(fmt.Sprintf("file:///%d.hcl", i)); !ok {
			t.Errorf("document %d missing", i)
		}
	}
}
