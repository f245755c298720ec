package sentinel_test

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/dropbox/cinterop/cstring"
	"github.com/dropbox/cinterop/gocheck2"
	"github.com/dropbox/cinterop/sentinel"
)

func Test(t *testing.T) {
	TestingT(t)
}

type SentinelSuite struct{}

var _ = Suite(&SentinelSuite{})

func (s *SentinelSuite) TestDefaultConvention(c *C) {
	zero := sentinel.ZeroMeansOK[int]()

	c.Assert(zero.Wrap(0), gocheck2.IsOK)
	c.Assert(zero.Wrap(5), gocheck2.HasError)
	c.Assert(zero.Wrap(-1), gocheck2.HasError)
}

func (s *SentinelSuite) TestOf(c *C) {
	c.Assert(sentinel.Of(0), gocheck2.IsOK)
	c.Assert(sentinel.Of(5), gocheck2.HasError)
	c.Assert(sentinel.Of(5).Value(), Equals, 5)
	c.Assert(sentinel.Of(5).IsOK(), gocheck2.IsFalse)
}

func (s *SentinelSuite) TestNegativeMeansOK(c *C) {
	neg := sentinel.NewConvention(0, sentinel.LessThan[int])

	c.Assert(neg.Wrap(-1), gocheck2.IsOK)
	c.Assert(neg.Wrap(1), gocheck2.HasError)
	c.Assert(neg.Wrap(0), gocheck2.HasError)
}

func (s *SentinelSuite) TestPosixReturnCode(c *C) {
	// read(2) style: -1 signals failure, any byte count is success.
	posix := sentinel.NewConvention(-1, sentinel.NotEqualTo[int])

	c.Assert(posix.Wrap(0), gocheck2.IsOK)
	c.Assert(posix.Wrap(4096), gocheck2.IsOK)
	r := posix.Wrap(-1)
	c.Assert(r, gocheck2.HasError)
	c.Assert(r.Value(), Equals, -1)
}

func (s *SentinelSuite) TestNotSentinel(c *C) {
	c.Assert(sentinel.NotSentinel(-1).Wrap(0), gocheck2.IsOK)
	c.Assert(sentinel.NotSentinel(-1).Wrap(-1), gocheck2.HasError)

	// Invalid-handle style: one reserved bit pattern means failure.
	invalidHandle := ^uintptr(0)
	handles := sentinel.NotSentinel(invalidHandle)
	c.Assert(handles.Wrap(uintptr(0x1234)), gocheck2.IsOK)
	c.Assert(handles.Wrap(invalidHandle), gocheck2.HasError)
}

func (s *SentinelSuite) TestNonNegativeMeansOK(c *C) {
	nonNeg := sentinel.NewConvention(0, sentinel.GreaterOrEqual[int64])

	c.Assert(nonNeg.Wrap(0), gocheck2.IsOK)
	c.Assert(nonNeg.Wrap(42), gocheck2.IsOK)
	c.Assert(nonNeg.Wrap(-7), gocheck2.HasError)
}

func (s *SentinelSuite) TestOrderingPredicates(c *C) {
	c.Assert(sentinel.LessOrEqual(3, 3), gocheck2.IsTrue)
	c.Assert(sentinel.LessOrEqual(4, 3), gocheck2.IsFalse)
	c.Assert(sentinel.GreaterThan(4, 3), gocheck2.IsTrue)
	c.Assert(sentinel.GreaterThan(3, 3), gocheck2.IsFalse)
}

func (s *SentinelSuite) TestValueRoundTrip(c *C) {
	// The raw value passes through unchanged under every convention.
	for _, v := range []int{-3, -1, 0, 1, 7} {
		c.Assert(sentinel.Of(v).Value(), Equals, v)
		c.Assert(sentinel.NotSentinel(-1).Wrap(v).Value(), Equals, v)
		c.Assert(
			sentinel.NewConvention(0, sentinel.LessThan[int]).Wrap(v).Value(),
			Equals, v)
	}
}

func (s *SentinelSuite) TestNullPointerLookup(c *C) {
	// A name-lookup API that returns a string pointer, nil on failure.
	conv := sentinel.NotSentinel[*byte](nil)

	lookup := func(found bool) *byte {
		if !found {
			return nil
		}
		buf := []byte{'h', 'i', 0}
		return &buf[0]
	}

	r := conv.Wrap(lookup(false))
	c.Assert(r, gocheck2.HasError)

	// The failed result still composes with cstring without any nil guard.
	name := cstring.New(r.Value())
	c.Assert(name.IsNull(), gocheck2.IsTrue)
	c.Assert(name.CStr(), NotNil)
	steps := 0
	for range name.Units() {
		steps++
	}
	c.Assert(steps, Equals, 0)

	r = conv.Wrap(lookup(true))
	c.Assert(r, gocheck2.IsOK)
	c.Assert(cstring.New(r.Value()).String(), Equals, "hi")
}
