package chain_test

import (
	"bytes"
	"encoding/json"

	"github.com/renproject/lineage/chain"
	"github.com/renproject/lineage/testutil"
	"github.com/renproject/surge"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Marshalling chains", func() {
	Context("when marshalling and unmarshalling JSON", func() {
		It("should return an equal chain", func() {
			expected := testutil.RandomChain(testutil.RandomHeight(16))
			data, err := json.Marshal(expected)
			Expect(err).ShouldNot(HaveOccurred())

			got := chain.Chain{}
			Expect(json.Unmarshal(data, &got)).To(Succeed())
			Expect(got.Equal(expected)).To(BeTrue())
			Expect(got.Height()).To(Equal(expected.Height()))
		})

		It("should reject a height that does not match the links", func() {
			got := chain.Chain{}
			Expect(json.Unmarshal([]byte(`{"height":3,"ids":[1,2]}`), &got)).ToNot(Succeed())
			Expect(json.Unmarshal([]byte(`{"height":-1,"ids":[]}`), &got)).ToNot(Succeed())
		})
	})

	Context("when marshalling and unmarshalling binary", func() {
		It("should return an equal chain", func() {
			expected := testutil.RandomChain(testutil.RandomHeight(16))
			data, err := surge.ToBinary(expected)
			Expect(err).ShouldNot(HaveOccurred())

			got := chain.Chain{}
			Expect(surge.FromBinary(data, &got)).To(Succeed())
			Expect(got.Equal(expected)).To(BeTrue())
		})

		It("should round-trip the height and every identifier", func() {
			expected := chain.Origin().Extend(7).Extend(9)
			data, err := surge.ToBinary(expected)
			Expect(err).ShouldNot(HaveOccurred())

			got := chain.Chain{}
			Expect(surge.FromBinary(data, &got)).To(Succeed())
			Expect(got.Height()).To(Equal(chain.Height(2)))
			Expect(got.IDs()).To(Equal([]chain.BlockID{7, 9}))
		})

		It("should fail when the byte budget is exhausted", func() {
			c := testutil.RandomChain(4)
			buf := new(bytes.Buffer)

			_, err := c.Marshal(buf, 0)
			Expect(err).To(Equal(surge.ErrMaxBytesExceeded))
			_, err = chain.Wrap(c).Marshal(buf, 0)
			Expect(err).To(Equal(surge.ErrMaxBytesExceeded))

			data, err := surge.ToBinary(c)
			Expect(err).ShouldNot(HaveOccurred())
			got := chain.Chain{}
			_, err = got.Unmarshal(bytes.NewReader(data), 0)
			Expect(err).To(Equal(surge.ErrMaxBytesExceeded))
			wrapped := chain.AnyChain{}
			_, err = wrapped.Unmarshal(bytes.NewReader(data), 0)
			Expect(err).To(Equal(surge.ErrMaxBytesExceeded))
		})

		It("should return an equal wrapped chain", func() {
			expected := chain.Wrap(testutil.RandomChain(testutil.RandomHeight(16)))
			data, err := surge.ToBinary(expected)
			Expect(err).ShouldNot(HaveOccurred())

			got := chain.AnyChain{}
			Expect(surge.FromBinary(data, &got)).To(Succeed())
			Expect(got.Height).To(Equal(expected.Height))
			Expect(got.Chain.Equal(expected.Chain)).To(BeTrue())
		})
	})

	Context("when unmarshalling a wrapper with a mismatched height", func() {
		It("should reject it", func() {
			got := chain.AnyChain{}
			Expect(json.Unmarshal([]byte(`{"height":2,"chain":{"height":1,"ids":[1]}}`), &got)).ToNot(Succeed())
		})
	})
})
