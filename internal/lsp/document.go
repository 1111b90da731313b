package lsp

import (
	"io"
	"sync"

	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/loader"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/semantic"
)

// 文档大小上限，超过就不做分析
const maxDocumentSize = 500 * 1024

// AnalysisResult 一次完整检查的结果
type AnalysisResult struct {
	// Program 语法树，语法错误时为 nil
	Program *ast.Program

	// Diagnostics 全部诊断，按阶段排列：词法、语法、语义
	Diagnostics []*errors.Diagnostic
}

// Document 表示一个打开的文档
type Document struct {
	URI     string
	Content string
	Version int

	// 延迟分析的缓存结果
	result   *AnalysisResult
	analyzed bool
	mu       sync.Mutex
}

// Analysis 获取文档的分析结果（延迟执行，结果缓存）
func (d *Document) Analysis() *AnalysisResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.analyzed {
		d.analyze()
	}
	return d.result
}

// analyze 运行完整检查流水线（内部方法，不加锁）
func (d *Document) analyze() {
	result := &AnalysisResult{}
	d.result = result
	d.analyzed = true

	// 超大文档直接跳过
	if len(d.Content) > maxDocumentSize {
		return
	}

	source := loader.NormalizeSource(d.Content)
	p := parser.New(source, uriToPath(d.URI))
	program, err := p.Parse()

	// 词法错误先于语法错误
	result.Diagnostics = append(result.Diagnostics, p.LexErrors()...)

	if err != nil {
		if diag, ok := err.(*errors.Diagnostic); ok {
			result.Diagnostics = append(result.Diagnostics, diag)
		}
		return
	}
	result.Program = program

	// 语义诊断收集到报告器，不写任何输出流
	reporter := errors.NewReporter()
	reporter.SetOutput(io.Discard)
	analyzer := semantic.New(reporter)
	analyzer.Analyze(program)
	result.Diagnostics = append(result.Diagnostics, reporter.Diagnostics()...)
}

// Invalidate 标记文档需要重新分析
func (d *Document) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.analyzed = false
	d.result = nil
}

// DocumentManager 文档管理器
type DocumentManager struct {
	docs      map[string]*Document // URI -> Document
	openOrder []string             // LRU 顺序（最近使用的在最后）
	maxDocs   int                  // 最多缓存的文档数量
	mu        sync.Mutex
	logger    *Logger
}

// NewDocumentManager 创建文档管理器
func NewDocumentManager(logger *Logger) *DocumentManager {
	return &DocumentManager{
		docs:      make(map[string]*Document),
		openOrder: make([]string, 0, 10),
		maxDocs:   10,
		logger:    logger,
	}
}

// Open 打开文档
func (dm *DocumentManager) Open(uri, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	// 如果文档已经打开，更新内容
	if doc, exists := dm.docs[uri]; exists {
		doc.Content = content
		doc.Version = version
		doc.Invalidate()
		dm.updateLRU(uri)
		dm.logger.Debug("Document updated: %s (version %d)", uri, version)
		return doc
	}

	// 检查是否需要淘汰旧文档
	if len(dm.docs) >= dm.maxDocs {
		dm.evictOldest()
	}

	// 创建新文档
	doc := &Document{
		URI:     uri,
		Content: content,
		Version: version,
	}

	dm.docs[uri] = doc
	dm.openOrder = append(dm.openOrder, uri)
	dm.logger.Debug("Document opened: %s (version %d, size %d bytes)", uri, version, len(content))

	return doc
}

// Close 关闭文档
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, exists := dm.docs[uri]
	if !exists {
		return
	}

	delete(dm.docs, uri)

	// 从 LRU 列表中删除
	for i, u := range dm.openOrder {
		if u == uri {
			dm.openOrder = append(dm.openOrder[:i], dm.openOrder[i+1:]...)
			break
		}
	}

	doc.Invalidate()
	dm.logger.Debug("Document closed: %s (remaining: %d)", uri, len(dm.docs))
}

// Get 获取文档
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, exists := dm.docs[uri]
	if !exists {
		return nil
	}

	dm.updateLRU(uri)
	return doc
}

// Update 更新文档内容
func (dm *DocumentManager) Update(uri, content string, version int) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, exists := dm.docs[uri]
	if !exists {
		return
	}

	doc.Content = content
	doc.Version = version
	doc.Invalidate()
	dm.updateLRU(uri)

	dm.logger.Debug("Document content updated: %s (version %d)", uri, version)
}

// Count 返回当前打开的文档数量
func (dm *DocumentManager) Count() int {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return len(dm.docs)
}

// updateLRU 更新 LRU 顺序（内部方法，调用者需持有锁）
func (dm *DocumentManager) updateLRU(uri string) {
	for i, u := range dm.openOrder {
		if u == uri {
			dm.openOrder = append(dm.openOrder[:i], dm.openOrder[i+1:]...)
			break
		}
	}
	dm.openOrder = append(dm.openOrder, uri)
}

// evictOldest 淘汰最旧的文档（内部方法，调用者需持有锁）
func (dm *DocumentManager) evictOldest() {
	if len(dm.openOrder) == 0 {
		return
	}

	oldestURI := dm.openOrder[0]
	doc := dm.docs[oldestURI]

	delete(dm.docs, oldestURI)
	dm.openOrder = dm.openOrder[1:]

	if doc != nil {
		doc.Invalidate()
	}

	dm.logger.Info("Evicted oldest document (LRU): %s", oldestURI)
}
