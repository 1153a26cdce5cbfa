package compress

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Model Table", func() {
	DescribeTable("lookupByName resolves every advertised model",
		func(name string, wantID uint8) {
			idx, ok := lookupByName(name)
			Expect(ok).To(BeTrue())
			Expect(modelTable[idx].id).To(Equal(wantID))
		},
		Entry("none", "none", uint8(0)),
		Entry("zlib", "zlib", uint8(1)),
		Entry("lz4", "lz4", uint8(2)),
		Entry("lz4hc", "lz4hc", uint8(3)),
		Entry("lzo2", "lzo2", uint8(4)),
		Entry("lzma", "lzma", uint8(5)),
		Entry("bzip2", "bzip2", uint8(6)),
	)

	It("rejects an unknown name", func() {
		_, ok := lookupByName("snappy")
		Expect(ok).To(BeFalse())
	})

	It("caps maxModel at MaxCompressMethods", func() {
		Expect(maxModel).To(BeNumerically("<=", uint8(MaxCompressMethods)))
	})

	It("rejects an id beyond maxModel", func() {
		_, ok := lookupByID(200)
		Expect(ok).To(BeFalse())
	})

	It("never resolves the reserved sentinel id", func() {
		_, ok := lookupByID(255)
		Expect(ok).To(BeFalse())
	})

	It("keeps every row's id positional", func() {
		for i, row := range modelTable {
			Expect(int(row.id)).To(Equal(i))
		}
	})
})
