package domain

// BlobLike is an in-memory object carrying its own byte payload and MIME
// metadata. Blob and File are the two concrete shapes the resolver accepts.
type BlobLike interface {
	Bytes() []byte
	Text() string
	Size() int64
	ContentType() string
}

// Blob is an immutable in-memory byte payload tagged with a MIME type.
type Blob struct {
	data []byte
	mime string
}

// NewBlob creates a blob over the given bytes. The slice is not copied;
// callers must not mutate it afterwards.
func NewBlob(data []byte, mimeType string) *Blob {
	return &Blob{
		data: data,
		mime: mimeType,
	}
}

// Bytes returns the blob's payload.
func (b *Blob) Bytes() []byte {
	return b.data
}

// Text returns the payload decoded as UTF-8 text.
func (b *Blob) Text() string {
	return string(b.data)
}

// Size returns the payload length in bytes.
func (b *Blob) Size() int64 {
	return int64(len(b.data))
}

// ContentType returns the MIME type the blob was tagged with, possibly empty.
func (b *Blob) ContentType() string {
	return b.mime
}

// File is a Blob that carries its own filename.
type File struct {
	*Blob
	name string
}

// NewFile creates a named blob.
func NewFile(data []byte, name, mimeType string) *File {
	return &File{
		Blob: NewBlob(data, mimeType),
		name: name,
	}
}

// Name returns the filename the payload was created with.
func (f *File) Name() string {
	return f.name
}
