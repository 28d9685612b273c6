package chain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/renproject/surge"
)

// MarshalJSON is implemented because it is not uncommon that chains need to
// be made available through external APIs. A chain is represented by its
// height and its block identifiers, oldest first.
func (c Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Height Height    `json:"height"`
		IDs    []BlockID `json:"ids"`
	}{
		c.Height(),
		c.IDs(),
	})
}

// UnmarshalJSON rebuilds the chain by extending the origin one identifier at
// a time, so the height invariant holds by construction. A height that does
// not match the number of identifiers is rejected.
func (c *Chain) UnmarshalJSON(data []byte) error {
	tmp := struct {
		Height Height    `json:"height"`
		IDs    []BlockID `json:"ids"`
	}{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return c.rebuild(tmp.Height, tmp.IDs)
}

// SizeHint of how many bytes will be needed to represent a chain in binary.
func (c Chain) SizeHint() int {
	return surge.SizeHint(c.Height()) + surge.SizeHint(c.IDs())
}

// Marshal this chain into binary.
func (c Chain) Marshal(w io.Writer, m int) (int, error) {
	if m <= 0 {
		return m, surge.ErrMaxBytesExceeded
	}

	m, err := surge.Marshal(w, c.Height(), m)
	if err != nil {
		return m, err
	}
	return surge.Marshal(w, c.IDs(), m)
}

// Unmarshal into this chain from binary.
func (c *Chain) Unmarshal(r io.Reader, m int) (int, error) {
	if m <= 0 {
		return m, surge.ErrMaxBytesExceeded
	}

	height := Height(0)
	m, err := surge.Unmarshal(r, &height, m)
	if err != nil {
		return m, err
	}
	ids := []BlockID{}
	if m, err = surge.Unmarshal(r, &ids, m); err != nil {
		return m, err
	}
	return m, c.rebuild(height, ids)
}

func (c *Chain) rebuild(height Height, ids []BlockID) error {
	if height < 0 || int64(height) != int64(len(ids)) {
		return fmt.Errorf("invalid chain: height=%d does not match %d links", height, len(ids))
	}
	rebuilt := Origin()
	for _, id := range ids {
		rebuilt = rebuilt.Extend(id)
	}
	*c = rebuilt
	return nil
}

// MarshalJSON is implemented because it is not uncommon that chains need to
// be made available through external APIs.
func (c AnyChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Height Height `json:"height"`
		Chain  Chain  `json:"chain"`
	}{
		c.Height,
		c.Chain,
	})
}

// UnmarshalJSON rejects wrappers whose recorded height disagrees with the
// height of the wrapped chain.
func (c *AnyChain) UnmarshalJSON(data []byte) error {
	tmp := struct {
		Height Height `json:"height"`
		Chain  Chain  `json:"chain"`
	}{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.Height != tmp.Chain.Height() {
		return fmt.Errorf("invalid chain: wrapped height=%d does not match chain height=%d", tmp.Height, tmp.Chain.Height())
	}
	c.Height = tmp.Height
	c.Chain = tmp.Chain
	return nil
}

// SizeHint of how many bytes will be needed to represent a wrapped chain in
// binary.
func (c AnyChain) SizeHint() int {
	return surge.SizeHint(c.Height) + c.Chain.SizeHint()
}

// Marshal this wrapped chain into binary.
func (c AnyChain) Marshal(w io.Writer, m int) (int, error) {
	if m <= 0 {
		return m, surge.ErrMaxBytesExceeded
	}

	m, err := surge.Marshal(w, c.Height, m)
	if err != nil {
		return m, err
	}
	return c.Chain.Marshal(w, m)
}

// Unmarshal into this wrapped chain from binary.
func (c *AnyChain) Unmarshal(r io.Reader, m int) (int, error) {
	if m <= 0 {
		return m, surge.ErrMaxBytesExceeded
	}

	m, err := surge.Unmarshal(r, &c.Height, m)
	if err != nil {
		return m, err
	}
	if m, err = c.Chain.Unmarshal(r, m); err != nil {
		return m, err
	}
	if c.Height != c.Chain.Height() {
		return m, fmt.Errorf("invalid chain: wrapped height=%d does not match chain height=%d", c.Height, c.Chain.Height())
	}
	return m, nil
}
