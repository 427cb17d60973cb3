package pqdif

import (
	"time"

	"github.com/scigolib/pqdif/internal/core"
)

// ContainerRecord is the semantic view over a Container record's element
// tree: version numbers, file name, and creation time (spec.md §4.G).
type ContainerRecord struct {
	collection *core.Collection
}

// NewContainerRecord creates an empty ContainerRecord backed by a fresh
// Collection tagged as a Container, with the creation defaults from
// spec.md §4.G: writer version 1.5, compatible version 1.0, creation time
// now (UTC), and a file name following the "yyyy-MM-dd_HH.mm.ss.pqd"
// convention.
func NewContainerRecord() *ContainerRecord {
	c := &ContainerRecord{collection: core.NewCollection(core.RecordTypeContainer)}
	c.versionVector().SetSize(4)
	c.SetWriterVersion(1, 5)
	c.SetCompatibleVersion(1, 0)
	now := time.Now().UTC()
	_ = c.SetCreation(now)
	_ = c.SetFileName(DefaultFileName(now))
	return c
}

func (c *ContainerRecord) versionVector() *core.Vector {
	return c.collection.GetOrAddVector(core.VersionInfoTag, core.UnsignedInteger4)
}

// WriterMajor returns index 0 of the shared VersionInfo vector.
func (c *ContainerRecord) WriterMajor() (uint32, error) { return c.versionField(0) }

// WriterMinor returns index 1 of the shared VersionInfo vector.
func (c *ContainerRecord) WriterMinor() (uint32, error) { return c.versionField(1) }

// CompatibleMajor returns index 2 of the shared VersionInfo vector.
func (c *ContainerRecord) CompatibleMajor() (uint32, error) { return c.versionField(2) }

// CompatibleMinor returns index 3 of the shared VersionInfo vector.
func (c *ContainerRecord) CompatibleMinor() (uint32, error) { return c.versionField(3) }

func (c *ContainerRecord) versionField(i int) (uint32, error) {
	v := c.collection.GetVectorByTag(core.VersionInfoTag)
	if v == nil {
		return 0, missingElement("ContainerRecord", "VersionInfo", VersionInfoTag)
	}
	return v.GetUint4(i)
}

// SetWriterVersion sets indices 0 and 1 of the shared VersionInfo vector.
func (c *ContainerRecord) SetWriterVersion(major, minor uint32) error {
	v := c.versionVector()
	if err := v.SetUint4(0, major); err != nil {
		return err
	}
	return v.SetUint4(1, minor)
}

// SetCompatibleVersion sets indices 2 and 3 of the shared VersionInfo
// vector.
func (c *ContainerRecord) SetCompatibleVersion(major, minor uint32) error {
	v := c.versionVector()
	if err := v.SetUint4(2, major); err != nil {
		return err
	}
	return v.SetUint4(3, minor)
}

// FileName returns the container's FileName field.
func (c *ContainerRecord) FileName() (string, error) {
	v := c.collection.GetVectorByTag(core.FileNameTag)
	if v == nil {
		return "", missingElement("ContainerRecord", "FileName", FileNameTag)
	}
	return char1VectorToString(v), nil
}

// SetFileName sets the container's FileName field.
func (c *ContainerRecord) SetFileName(name string) error {
	v := c.collection.GetOrAddVector(core.FileNameTag, core.Char1)
	return stringToChar1Vector(v, name)
}

// Creation returns the container's creation timestamp.
func (c *ContainerRecord) Creation() (time.Time, error) {
	s := c.collection.GetScalarByTag(core.CreationTag)
	if s == nil {
		return time.Time{}, missingElement("ContainerRecord", "Creation", CreationTag)
	}
	return s.GetTimestamp()
}

// SetCreation sets the container's creation timestamp.
func (c *ContainerRecord) SetCreation(t time.Time) error {
	s := c.collection.GetOrAddScalar(core.CreationTag, core.Timestamp)
	return s.SetTimestamp(t)
}

// DefaultFileName formats a file name using the "yyyy-MM-dd_HH.mm.ss.pqd"
// convention from spec.md §4.G.
func DefaultFileName(t time.Time) string {
	return t.UTC().Format("2006-01-02_15.04.05") + ".pqd"
}

// Collection returns the underlying element tree backing this view.
func (c *ContainerRecord) Collection() *core.Collection { return c.collection }

func char1VectorToString(v *core.Vector) string {
	raw := v.GetBytes()
	return string(raw)
}

func stringToChar1Vector(v *core.Vector, s string) error {
	if err := v.SetSize(uint32(len(s))); err != nil {
		return err
	}
	return v.SetBytes([]byte(s))
}
