package compress

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transform Dispatch", func() {
	var reg *Registry

	BeforeEach(func() {
		reg = NewRegistry()
		reg.log = nopLogger{}
	})

	DescribeTable("round-trips a buffer through every built-in model",
		func(model string, level int) {
			h := NewHandleState(reg)
			defer h.Close()
			Expect(h.Configure(Config{Model: model, Level: level})).To(Succeed())

			payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)
			out, err := h.Compress(payload)
			Expect(err).NotTo(HaveOccurred())

			back, err := h.Decompress(h.Model(), out)
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(payload))
		},
		Entry("zlib", "zlib", 6),
		Entry("lz4", "lz4", 0),
		Entry("lz4hc", "lz4hc", 9),
		Entry("lzo2", "lzo2", 0),
		Entry("lzma", "lzma", 3),
		Entry("bzip2", "bzip2", 5),
	)

	It("accepts an lz4hc-tagged packet through the lz4 decoder (shared decompressor)", func() {
		enc := NewHandleState(reg)
		defer enc.Close()
		Expect(enc.Configure(Config{Model: "lz4hc", Level: 9})).To(Succeed())

		payload := []byte("redundant multi-link encrypted transport payload")
		out, err := enc.Compress(payload)
		Expect(err).NotTo(HaveOccurred())

		dec := NewHandleState(reg)
		defer dec.Close()
		back, err := dec.Decompress(2, out) // id 2 = lz4, not 3
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(payload))
	})

	It("produces output strictly smaller than a 4KiB all-zero buffer with zlib", func() {
		h := NewHandleState(reg)
		defer h.Close()
		Expect(h.Configure(Config{Model: "zlib", Level: 6})).To(Succeed())

		payload := make([]byte, 4096)
		out, err := h.Compress(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(out)).To(BeNumerically("<", len(payload)))

		back, err := h.Decompress(1, out)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(payload))
	})

	It("never invokes a back-end for model none", func() {
		h := NewHandleState(reg)
		defer h.Close()
		Expect(h.Configure(Config{Model: "none"})).To(Succeed())
		Expect(h.Model()).To(Equal(uint8(0)))

		payload := []byte("unchanged")
		out, err := h.Compress(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(payload))
		Expect(reg.isLoaded(1)).To(BeFalse())
	})

	It("rejects configuring a non-built-in model", func() {
		reg.rows[4].builtIn = false // lzo2, simulated compiled-out
		h := NewHandleState(reg)
		err := h.Configure(Config{Model: "lzo2"})
		Expect(errors.Is(err, ErrInvalidArgument)).To(BeTrue())
	})

	It("rejects decompressing a packet tagged with an unknown model_id", func() {
		h := NewHandleState(reg)
		_, err := h.Decompress(200, []byte("x"))
		Expect(errors.Is(err, ErrInvalidArgument)).To(BeTrue())
	})

	It("rejects decompressing a packet tagged with a non-built-in model_id", func() {
		reg.rows[6].builtIn = false // bzip2, simulated compiled-out
		h := NewHandleState(reg)
		_, err := h.Decompress(6, []byte("x"))
		Expect(errors.Is(err, ErrInvalidArgument)).To(BeTrue())
	})

	It("defaults threshold to DefaultCompressThreshold when configured as zero", func() {
		h := NewHandleState(reg)
		defer h.Close()
		Expect(h.Configure(Config{Model: "zlib", Level: 6, Threshold: 0})).To(Succeed())
		Expect(h.Threshold()).To(Equal(DefaultCompressThreshold))
	})

	It("rejects a threshold above the max packet size", func() {
		h := NewHandleState(reg)
		cerr := h.Configure(Config{Model: "zlib", Level: 6, Threshold: MaxPacketSize + 1})
		Expect(errors.Is(cerr, ErrInvalidArgument)).To(BeTrue())
	})

	It("rejects an unsupported level with no libref charge", func() {
		h := NewHandleState(reg)
		err := h.Configure(Config{Model: "bzip2", Level: 99})
		Expect(errors.Is(err, ErrInvalidArgument)).To(BeTrue())
		Expect(reg.libref(6)).To(Equal(0))
	})
})
