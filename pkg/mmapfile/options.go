package mmapfile

// Mode is the access mode a MappedFile was opened or created with.
type Mode int

const (
	// ReadOnly maps the file for reads only.
	ReadOnly Mode = iota
	// ReadWrite maps the file for reads and writes that propagate to disk.
	ReadWrite
	// CopyOnWrite maps the file privately: writes (where exposed) never
	// reach disk, even after Flush.
	CopyOnWrite
)

func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "ReadOnly"
	case ReadWrite:
		return "ReadWrite"
	case CopyOnWrite:
		return "CopyOnWrite"
	default:
		return "Mode(?)"
	}
}

// Builder configures a MappedFile before it is built. The zero value is not
// usable; construct one with NewBuilder.
//
// Defaults: Mode ReadOnly for Open, ReadWrite for Create; FlushPolicy
// Manual; huge pages off.
type Builder struct {
	path      string
	mode      Mode
	size      uint64
	policy    FlushPolicy
	hugePages bool
	modeIsSet bool
}

// NewBuilder starts configuring a MappedFile at path.
func NewBuilder(path string) *Builder {
	return &Builder{path: path, policy: ManualFlush()}
}

// Mode sets the access mode.
func (b *Builder) Mode(mode Mode) *Builder {
	b.mode = mode
	b.modeIsSet = true

	return b
}

// Size sets the size used by Build when creating a new file. Ignored when
// opening an existing file.
func (b *Builder) Size(size uint64) *Builder {
	b.size = size

	return b
}

// FlushPolicy sets the persistence policy consulted after every mutation.
func (b *Builder) FlushPolicy(policy FlushPolicy) *Builder {
	b.policy = policy

	return b
}

// HugePages requests a large-page-backed mapping. If the platform or kernel
// rejects the request, Build silently falls back to normal pages.
func (b *Builder) HugePages(enabled bool) *Builder {
	b.hugePages = enabled

	return b
}

// Build creates a new file (Mode ReadWrite, default) or opens an existing
// one (Mode ReadOnly, default) according to the configured Mode. With no
// Mode set, a non-zero Size means create and a zero Size means open.
func (b *Builder) Build() (*MappedFile, error) {
	mode := b.mode
	if !b.modeIsSet {
		mode = ReadOnly
		if b.size > 0 {
			mode = ReadWrite
		}
	}

	switch mode {
	case ReadWrite:
		if b.size > 0 {
			return createReadWrite(b.path, b.size, b.policy, b.hugePages)
		}

		return openReadWrite(b.path, b.policy, b.hugePages)
	case ReadOnly:
		return openReadOnly(b.path, b.hugePages)
	case CopyOnWrite:
		return openCopyOnWrite(b.path, b.hugePages)
	default:
		return nil, invalidMode("Build", b.path, mode)
	}
}
