package cache_test

import (
	"bitcat/pkg/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cache", func() {
	CertCache := cache.GetNewCache(2)

	Describe("StoreCache", func() {
		Describe("If cache is under its limit", func() {
			It("should store the element", func() {
				CertCache.Reset()
				CertCache.StoreCache("test")
				CertCache.StoreCache("test2")
				Expect(len(CertCache.Slab)).To(Equal(2))
				Expect(len(CertCache.List)).To(Equal(2))
				Expect(CertCache.Counter).To(Equal(2))
			})
		})
		Describe("If cache exceeds its limit", func() {
			It("should evict the oldest element", func() {
				CertCache.Reset()
				CertCache.StoreCache("test")
				CertCache.StoreCache("test2")
				CertCache.StoreCache("test3")
				Expect(len(CertCache.Slab)).To(Equal(2))
				Expect(len(CertCache.List)).To(Equal(2))
				Expect(CertCache.List[0]).To(Equal("test2"))
				Expect(CertCache.InCache("test")).To(BeFalse())
			})
		})
		Describe("If element is stored twice", func() {
			It("should keep a single entry", func() {
				CertCache.Reset()
				CertCache.StoreCache("test")
				CertCache.StoreCache("test")
				Expect(len(CertCache.List)).To(Equal(1))
			})
		})
	})
	Describe("InCache", func() {
		Describe("If element is in the cache", func() {
			It("should return true", func() {
				CertCache.Reset()
				CertCache.StoreCache("test")
				Expect(CertCache.InCache("test")).To(BeTrue())
			})
		})
		Describe("If element is not in the cache", func() {
			It("should return false", func() {
				Expect(CertCache.InCache("inexistant")).ToNot(BeTrue())
			})
		})
	})
})
