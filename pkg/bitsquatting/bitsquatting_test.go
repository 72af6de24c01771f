package bitsquatting_test

import (
	"bitcat/pkg/bitsquatting"
	"bitcat/pkg/charset"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetBitsquattingPatterns", func() {
	Describe("If label is a short word", func() {
		It("should keep only registrable one-bit variants, in flip order", func() {
			patterns := bitsquatting.GetBitsquattingPatterns("ab")
			Expect(patterns).To(Equal([]string{"cb", "eb", "ib", "qb", "ac", "af", "aj", "ar"}))
		})
		It("should drop uppercase and symbol variants", func() {
			patterns := bitsquatting.GetBitsquattingPatterns("abc")
			Expect(patterns).To(Equal([]string{
				"cbc", "ebc", "ibc", "qbc",
				"acc", "afc", "ajc", "arc",
				"abb", "aba", "abg", "abk", "abs",
			}))
			for _, p := range patterns {
				Expect(charset.Valid(p, charset.DNS)).To(BeTrue())
			}
		})
	})
	Describe("If label is empty", func() {
		It("should return no pattern", func() {
			Expect(bitsquatting.GetBitsquattingPatterns("")).To(BeEmpty())
		})
	})
	Describe("If label is not valid UTF-8", func() {
		It("should return no pattern", func() {
			Expect(bitsquatting.GetBitsquattingPatterns("\xff")).To(BeEmpty())
		})
	})
})
