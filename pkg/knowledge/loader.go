package knowledge

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/knowledge.yaml
var defaultKnowledge []byte

// Loader 知识库加载器接口
type Loader interface {
	// Load 加载并校验知识库快照
	Load(ctx context.Context) (*KnowledgeBase, error)
}

// ReaderLoader 从 io.Reader 读取 YAML 知识库
type ReaderLoader struct {
	source string
	reader io.Reader
}

// NewReaderLoader 从 io.Reader 创建加载器，source 仅用于错误信息
func NewReaderLoader(source string, reader io.Reader) *ReaderLoader {
	return &ReaderLoader{source: source, reader: reader}
}

// Load 加载知识库
func (l *ReaderLoader) Load(ctx context.Context) (*KnowledgeBase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	kb, err := Decode(l.reader)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.source, err)
	}
	return kb, nil
}

// FileLoader 从文件读取 YAML 知识库
type FileLoader struct {
	path string
}

// NewFileLoader 创建文件加载器
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load 加载知识库
func (l *FileLoader) Load(ctx context.Context) (*KnowledgeBase, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewReaderLoader(l.path, f).Load(ctx)
}

// EmbeddedLoader 加载随二进制发布的默认知识库
type EmbeddedLoader struct{}

// NewEmbeddedLoader 创建内嵌知识库加载器
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load 加载知识库
func (l *EmbeddedLoader) Load(ctx context.Context) (*KnowledgeBase, error) {
	return NewReaderLoader("embedded", bytes.NewReader(defaultKnowledge)).Load(ctx)
}

// Decode 解析 YAML 文档并校验结果。未知字段视为错误。
func Decode(r io.Reader) (*KnowledgeBase, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	kb := &KnowledgeBase{}
	if err := dec.Decode(kb); err != nil {
		if err == io.EOF {
			return kb, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidKnowledge, err)
	}
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return kb, nil
}

// Default 返回内嵌的默认知识库。内嵌数据在构建时固定，解析失败即为程序错误。
func Default() *KnowledgeBase {
	kb, err := NewEmbeddedLoader().Load(context.Background())
	if err != nil {
		panic(fmt.Sprintf("knowledge: embedded snapshot is invalid: %v", err))
	}
	return kb
}

// Open 按路径加载知识库，path 为空时使用内嵌快照
func Open(ctx context.Context, path string) (*KnowledgeBase, error) {
	var loader Loader = NewEmbeddedLoader()
	if path != "" {
		loader = NewFileLoader(path)
	}
	return loader.Load(ctx)
}

// compile-time interface check
var _ Loader = (*ReaderLoader)(nil)
var _ Loader = (*FileLoader)(nil)
var _ Loader = (*EmbeddedLoader)(nil)
