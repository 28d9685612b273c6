package lineage_test

import (
	"github.com/renproject/lineage"
	"github.com/renproject/lineage/fork"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Lineage", func() {
	Context("when relating chains through the package facade", func() {
		It("should relate the origin to its extensions", func() {
			a := lineage.Origin()
			b := lineage.Origin().Extend(1)

			Expect(lineage.Classify(a, b).Relation()).To(Equal(fork.Ancestor))
			Expect(lineage.Classify(b, a).Relation()).To(Equal(fork.Descendant))
		})

		It("should relate structurally equal chains", func() {
			a := lineage.Origin().Extend(1)
			b := lineage.Origin().Extend(1)
			Expect(lineage.Classify(a, b).Relation()).To(Equal(fork.Equal))
		})

		It("should leave same-height siblings unrelated", func() {
			a := lineage.Origin().Extend(1)
			b := lineage.Origin().Extend(2)
			Expect(lineage.Classify(a, b).Relation()).To(Equal(fork.Unrelated))
		})

		It("should witness the links separating a chain from its prefix", func() {
			b := lineage.Origin().Extend(1)
			a := b.Extend(2)

			witness, ok := lineage.FindPrefix(b, a)
			Expect(ok).To(BeTrue())
			Expect(witness.NumSteps()).To(Equal(1))
			Expect(witness.Head().Equal(a)).To(BeTrue())

			_, ok = lineage.FindPrefix(a, b)
			Expect(ok).To(BeFalse())
		})

		It("should leave chains with mismatched ancestry unrelated", func() {
			a := lineage.Origin().Extend(1)
			b := lineage.Origin().Extend(2).Extend(3)
			Expect(lineage.Classify(a, b).Relation()).To(Equal(fork.Unrelated))
			Expect(lineage.Classify(b, a).Relation()).To(Equal(fork.Unrelated))
		})
	})
})
