package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	cases := []struct {
		name    string
		workers int
		jobs    int
	}{
		{name: "single worker", workers: 1, jobs: 10},
		{name: "more workers than jobs", workers: 8, jobs: 3},
		{name: "zero workers falls back to one", workers: 0, jobs: 5},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool[int, int](tt.workers, tt.jobs)
			wp.Start(func(job int) int {
				return job * job
			})
			for i := 0; i < tt.jobs; i++ {
				wp.AddJob(i)
			}
			wp.Close()
			wp.Wait()

			got := make([]int, 0, tt.jobs)
			for r := range wp.CollectResults() {
				got = append(got, r)
			}
			sort.Ints(got)

			want := make([]int, tt.jobs)
			for i := range want {
				want[i] = i * i
			}
			assert.Equal(t, want, got)
		})
	}
}
