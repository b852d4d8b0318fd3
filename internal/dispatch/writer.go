package dispatch

import (
	"bufio"
	"io"

	"github.com/hamid4356/MMT/internal/protocol"
	"github.com/hamid4356/MMT/pkg/log"
)

// runWriter drains the response queue onto the output stream, one JSON line
// per response, flushed immediately. The protocol is interactive: per-line
// latency matters more than write batching.
func (c *Controller) runWriter(out io.Writer) {
	defer c.writerWG.Done()
	bw := bufio.NewWriter(out)
	for {
		resp, ok := c.responses.Pop()
		if !ok {
			return
		}
		b, err := protocol.EncodeResponse(resp)
		if err != nil {
			c.logger.Error("dropping unencodable response", log.Int64("id", resp.ID), log.Err(err))
			continue
		}
		if _, err := bw.Write(b); err == nil {
			_ = bw.WriteByte('\n')
		}
		if err := bw.Flush(); err != nil {
			c.logger.Error("output write failed", log.Int64("id", resp.ID), log.Err(err))
		}
	}
}
