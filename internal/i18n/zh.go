package i18n

var messagesZH = map[string]string{
	// ========== 诊断前缀 ==========
	PrefixLexical:  "第 %d 行词法错误: ",
	PrefixParse:    "第 %d 行语法错误: ",
	PrefixSemantic: "第 %d 行语义错误: ",

	// ========== 词法分析 ==========
	ErrInvalidChar:      "非法字符 '%s'",
	ErrInvalidNumber:    "数字格式错误",
	ErrConsecutiveOps:   "不允许连续的运算符",
	ErrInvalidIdent:     "非法标识符",
	ErrUnexpectedLexeme: "意外的 token '%s'",

	// ========== 语法分析 ==========
	ErrUnexpectedToken:   "意外的 token '%s'",
	ErrMissingSemicolon:  "'%s' 之后缺少分号",
	ErrMissingIdentifier: "'%s' 之后应为标识符",
	ErrMissingEquals:     "'%s' 之后应为 '='",
	ErrInvalidExpression: "'%s' 之后的表达式无效",
	ErrMissingLParen:     "'%s' 之后缺少 '('",
	ErrMissingRParen:     "'%s' 之后缺少 ')'",
	ErrMissingCondition:  "'%s' 之后缺少条件表达式",
	ErrMissingBlock:      "'%s' 之后缺少大括号代码块",
	ErrInvalidOperator:   "无效的运算符 '%s'",
	ErrFunctionCall:      "'%s' 附近的函数调用错误",

	// ========== 语义分析 ==========
	ErrUndeclaredVar:     "未声明的变量 '%s'",
	ErrRedeclaredVar:     "变量 '%s' 在当前作用域中已声明",
	ErrTypeMismatch:      "涉及 '%s' 的类型不匹配",
	WarnUninitializedVar: "变量 '%s' 可能在初始化前被使用",
	ErrInvalidOperation:  "涉及 '%s' 的无效操作",

	// ========== 诊断统计 ==========
	DiagFoundErrors:   "发现 %d 个错误",
	DiagFoundWarnings: "发现 %d 个警告",

	// ========== 修复建议 ==========
	// 变量相关
	SuggestDeclareBeforeUse: "请先声明变量: `int %s;`",
	SuggestCheckSpelling:    "检查名称 '%s' 的拼写是否正确",
	SuggestRenameVariable:   "换一个名称，或把声明移入嵌套块中遮蔽外层变量",
	SuggestAssignBeforeUse:  "读取前先赋值: `%s = 0;`",

	// 语法相关
	SuggestAddSemicolon:   "语句以 ';' 结尾",
	SuggestDeclareForm:    "声明语句的形式为 `int name;`",
	SuggestParenthesize:   "条件必须带括号: `if (x > 0) ...`",
	SuggestCloseBlock:     "用 '}' 关闭代码块",
	SuggestAssignForm:     "赋值语句的形式为 `name = expression;`",
	SuggestOnlyFactorial:  "唯一可调用的函数是 `factorial(expression)`",
	SuggestStatementForms: "语句以 'int'、标识符、'if'、'while'、'repeat'、'print' 或 '{' 开头",

	// 词法相关
	SuggestRemoveCharacter: "删除该字符，它不属于本语言",
}
