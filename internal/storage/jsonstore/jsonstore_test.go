package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestJSONStore(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "JSONStore Suite")
}

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

var _ = ginkgo.Describe("Collection", func() {
	var dir string

	ginkgo.BeforeEach(func() {
		dir = ginkgo.GinkgoT().TempDir()
	})

	ginkgo.It("should create the backing file with an empty array", func() {
		_, err := NewCollection[note](dir, "notes")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		data, err := os.ReadFile(filepath.Join(dir, "notes.json"))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(string(data)).To(gomega.Equal("[]"))
	})

	ginkgo.It("should round-trip records through Mutate and All", func() {
		col, err := NewCollection[note](dir, "notes")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		err = col.Mutate(func(items []note) ([]note, error) {
			return append(items, note{ID: "n1", Body: "hello"}), nil
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		items, err := col.All()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(items).To(gomega.HaveLen(1))
		gomega.Expect(items[0].ID).To(gomega.Equal("n1"))
	})

	ginkgo.It("should leave the file untouched when the mutation fails", func() {
		col, err := NewCollection[note](dir, "notes")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gomega.Expect(col.ReplaceAll([]note{{ID: "n1"}})).To(gomega.Succeed())

		mutErr := col.Mutate(func(items []note) ([]note, error) {
			return nil, errors.New("boom")
		})
		gomega.Expect(mutErr).To(gomega.HaveOccurred())

		items, err := col.All()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(items).To(gomega.HaveLen(1))
	})

	ginkgo.It("should read back data an existing legacy file already holds", func() {
		path := filepath.Join(dir, "notes.json")
		legacy := `[
  {
    "id": "old-1",
    "body": "written by the previous backend"
  }
]`
		gomega.Expect(os.WriteFile(path, []byte(legacy), 0o644)).To(gomega.Succeed())

		col, err := NewCollection[note](dir, "notes")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		items, err := col.All()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(items).To(gomega.HaveLen(1))
		gomega.Expect(items[0].ID).To(gomega.Equal("old-1"))
	})

	ginkgo.It("should not lose writes under concurrent mutation", func() {
		col, err := NewCollection[note](dir, "notes")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = col.Mutate(func(items []note) ([]note, error) {
					return append(items, note{ID: "n"}), nil
				})
			}()
		}
		wg.Wait()

		items, err := col.All()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(items).To(gomega.HaveLen(20))
	})
})
