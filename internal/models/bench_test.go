package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// BenchmarkArticleList measures a full feed read and a tag-filtered read.
func BenchmarkArticleList(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		s := NewArticleStore()
		for i := 0; i < n; i++ {
			s.Create(&Article{
				AuthorAddress: "0xabc",
				Title:         "t",
				Tags:          []string{fmt.Sprintf("tag%d", i%20)},
				PublishedAt:   time.Unix(int64(i), 0),
			})
		}

		b.Run(fmt.Sprintf("all/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s.List("")
			}
		})
		b.Run(fmt.Sprintf("tag/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s.List("tag7")
			}
		})
	}
}

// BenchmarkRecordDonation measures the copy-on-write cost as the activity
// log grows.
func BenchmarkRecordDonation(b *testing.B) {
	for _, n := range []int{10, 1000} {
		b.Run(fmt.Sprintf("activity=%d", n), func(b *testing.B) {
			s := NewAuthorStore(100)
			_, _ = s.Create("0xabc", "", time.Unix(0, 0))
			for i := 0; i < n; i++ {
				_, _ = s.RecordActivity("0xabc", JoinedActivity(time.Unix(int64(i), 0)))
			}
			amount := decimal.NewFromInt(25)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = s.RecordDonation("0xabc", amount, time.Unix(int64(i), 0))
			}
		})
	}
}

func BenchmarkSweepExpired(b *testing.B) {
	const n = 10000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := NewSubscriptionStore(time.Hour)
		for j := 0; j < n; j++ {
			s.Subscribe(fmt.Sprintf("r%d", j), "0xabc", time.Unix(int64(j), 0))
		}
		b.StartTimer()
		s.SweepExpired(time.Unix(n/2, 0).Add(time.Hour))
	}
}
