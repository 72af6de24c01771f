package bitflip_test

import (
	"iter"
	"unicode/utf8"

	"bitcat/pkg/bitflip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func collectBytes(seq iter.Seq[[]byte]) []string {
	var out []string
	for v := range seq {
		out = append(out, string(v))
	}
	return out
}

func collectText(seq iter.Seq[string]) []string {
	var out []string
	for v := range seq {
		out = append(out, v)
	}
	return out
}

var _ = Describe("Bytes", func() {
	Describe("If input is a single byte", func() {
		It("should yield all eight flips, least significant bit first", func() {
			variants := collectBytes(bitflip.Bytes([]byte{0x61}))
			Expect(variants).To(Equal([]string{
				"\x60", "\x63", "\x65", "\x69", "\x71", "\x41", "\x21", "\xe1",
			}))
		})
	})
	Describe("If input has several bytes", func() {
		input := []byte("abc")
		It("should yield eight variants per byte, none of them the input", func() {
			variants := collectBytes(bitflip.Bytes(input))
			Expect(variants).To(HaveLen(24))
			Expect(variants).ToNot(ContainElement("abc"))
			Expect(variants).To(ContainElement("\xe1bc"))
			Expect(variants).To(ContainElement("a\xe2c"))
			Expect(variants).To(ContainElement("ab\xe3"))
		})
		It("should walk positions first to last, bits low to high", func() {
			i := 0
			for v := range bitflip.Bytes(input) {
				pos, bit, ok := bitflip.FlipPosition(input, v)
				Expect(ok).To(BeTrue())
				Expect(pos).To(Equal(i / 8))
				Expect(bit).To(Equal(i % 8))
				i++
			}
			Expect(i).To(Equal(24))
		})
	})
	Describe("If input is empty", func() {
		It("should yield nothing", func() {
			Expect(collectBytes(bitflip.Bytes(nil))).To(BeEmpty())
			Expect(collectBytes(bitflip.Bytes([]byte{}))).To(BeEmpty())
		})
	})
	Describe("If input changes after the sequence is built", func() {
		It("should still yield the variants of the original input", func() {
			input := []byte("ab")
			seq := bitflip.Bytes(input)
			input[0] = 'z'
			variants := collectBytes(seq)
			Expect(variants).To(HaveLen(16))
			Expect(variants[0]).To(Equal("`b"))
		})
	})
	Describe("If the sequence is ranged over twice", func() {
		It("should restart from the first variant", func() {
			seq := bitflip.Bytes([]byte("ab"))
			first := collectBytes(seq)
			second := collectBytes(seq)
			Expect(second).To(Equal(first))
		})
		It("should match the sequence of a separate call", func() {
			first := collectBytes(bitflip.Bytes([]byte("ab")))
			second := collectBytes(bitflip.Bytes([]byte("ab")))
			Expect(second).To(Equal(first))
		})
		It("should restart after an abandoned pass", func() {
			seq := bitflip.Bytes([]byte("ab"))
			count := 0
			for range seq {
				count++
				if count == 3 {
					break
				}
			}
			Expect(count).To(Equal(3))
			Expect(collectBytes(seq)).To(HaveLen(16))
		})
	})
})

var _ = Describe("ASCIIBytes", func() {
	Describe("If input is plain ASCII", func() {
		It("should yield seven variants per byte and skip the high bit", func() {
			variants := collectBytes(bitflip.ASCIIBytes([]byte("abc")))
			Expect(variants).To(Equal([]string{
				"`bc", "cbc", "ebc", "ibc", "qbc", "Abc", "!bc",
				"acc", "a`c", "afc", "ajc", "arc", "aBc", "a\"c",
				"abb", "aba", "abg", "abk", "abs", "abC", "ab#",
			}))
		})
	})
})

var _ = Describe("Text", func() {
	Describe("If input is not valid UTF-8", func() {
		It("should fail with ErrInvalidEncoding", func() {
			seq, err := bitflip.Text("\xff\xfe")
			Expect(err).To(MatchError(bitflip.ErrInvalidEncoding))
			Expect(seq).To(BeNil())
		})
	})
	Describe("If input is ASCII", func() {
		It("should drop the variants that break the encoding", func() {
			seq, err := bitflip.Text("a")
			Expect(err).ToNot(HaveOccurred())
			Expect(collectText(seq)).Should(Equal([]string{"`", "c", "e", "i", "q", "A", "!"}))
		})
	})
	Describe("If input holds a multi-byte rune", func() {
		It("should only yield well-formed variants, each one flip away", func() {
			seq, err := bitflip.Text("é")
			Expect(err).ToNot(HaveOccurred())
			variants := collectText(seq)
			Expect(variants).To(HaveLen(10))
			for _, v := range variants {
				Expect(utf8.ValidString(v)).To(BeTrue())
				_, _, ok := bitflip.FlipPosition([]byte("é"), []byte(v))
				Expect(ok).To(BeTrue())
			}
		})
	})
	Describe("If input is empty", func() {
		It("should yield nothing", func() {
			seq, err := bitflip.Text("")
			Expect(err).ToNot(HaveOccurred())
			Expect(collectText(seq)).To(BeEmpty())
		})
	})
	Describe("If the sequence is ranged over twice", func() {
		It("should restart from the first variant", func() {
			seq, err := bitflip.Text("ab")
			Expect(err).ToNot(HaveOccurred())
			Expect(collectText(seq)).To(Equal(collectText(seq)))
		})
	})
})

var _ = Describe("ASCIIText", func() {
	Describe("If input is ASCII", func() {
		It("should yield the documented order", func() {
			seq, err := bitflip.ASCIIText("ab")
			Expect(err).ToNot(HaveOccurred())
			Expect(collectText(seq)).To(Equal([]string{
				"`b", "cb", "eb", "ib", "qb", "Ab", "!b",
				"ac", "a`", "af", "aj", "ar", "aB", "a\"",
			}))
		})
	})
	Describe("If input is not valid UTF-8", func() {
		It("should fail with ErrInvalidEncoding", func() {
			seq, err := bitflip.ASCIIText("\xc3(")
			Expect(err).To(MatchError(bitflip.ErrInvalidEncoding))
			Expect(seq).To(BeNil())
		})
	})
})

var _ = Describe("FlipPosition", func() {
	Describe("If variant is one flip away", func() {
		It("should report the byte and the bit", func() {
			pos, bit, ok := bitflip.FlipPosition([]byte("abc"), []byte("abg"))
			Expect(ok).To(BeTrue())
			Expect(pos).To(Equal(2))
			Expect(bit).To(Equal(2))
		})
	})
	Describe("If inputs are identical", func() {
		It("should report no flip", func() {
			_, _, ok := bitflip.FlipPosition([]byte("abc"), []byte("abc"))
			Expect(ok).To(BeFalse())
		})
	})
	Describe("If more than one bit differs", func() {
		It("should report no flip", func() {
			_, _, ok := bitflip.FlipPosition([]byte("abc"), []byte("abG"))
			Expect(ok).To(BeFalse())
			_, _, ok = bitflip.FlipPosition([]byte("abc"), []byte("Abg"))
			Expect(ok).To(BeFalse())
		})
	})
	Describe("If lengths differ", func() {
		It("should report no flip", func() {
			_, _, ok := bitflip.FlipPosition([]byte("abc"), []byte("abcd"))
			Expect(ok).To(BeFalse())
		})
	})
})
