package omission_test

import (
	"bitcat/pkg/omission"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetOmissionPatterns", func() {
	Describe("If label has distinct letters", func() {
		It("should drop each letter once", func() {
			Expect(omission.GetOmissionPatterns("abc")).To(Equal([]string{"bc", "ac", "ab"}))
		})
	})
	Describe("If dropping different letters gives the same result", func() {
		It("should deduplicate", func() {
			Expect(omission.GetOmissionPatterns("aab")).To(Equal([]string{"ab", "aa"}))
		})
	})
	Describe("If label is empty", func() {
		It("should return no pattern", func() {
			Expect(omission.GetOmissionPatterns("")).To(BeEmpty())
		})
	})
})
