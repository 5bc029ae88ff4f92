package i18n

// Message ID constants used as keys into messagesEN/messagesZH.
const (
	ErrAllTypesMustBeKnown = "ErrAllTypesMustBeKnown"
	ErrArgumentCountMax = "ErrArgumentCountMax"
	ErrArgumentCountMin = "ErrArgumentCountMin"
	ErrArrayIndexOutOfBounds = "ErrArrayIndexOutOfBounds"
	ErrArrayIndexSimple = "ErrArrayIndexSimple"
	ErrArrayNotCompatible = "ErrArrayNotCompatible"
	ErrArraySizeNegative = "ErrArraySizeNegative"
	ErrArraySizeNotConst = "ErrArraySizeNotConst"
	ErrArrayTooManyElements = "ErrArrayTooManyElements"
	ErrBreakOutsideLoop = "ErrBreakOutsideLoop"
	ErrCanOnlyCallFunctions = "ErrCanOnlyCallFunctions"
	ErrCannotAssign = "ErrCannotAssign"
	ErrCannotAssignFinalProperty = "ErrCannotAssignFinalProperty"
	ErrCannotCast = "ErrCannotCast"
	ErrCannotExtendFinalClass = "ErrCannotExtendFinalClass"
	ErrCannotInferInterface = "ErrCannotInferInterface"
	ErrCannotInferVarType = "ErrCannotInferVarType"
	ErrCannotOverrideFinalMethod = "ErrCannotOverrideFinalMethod"
	ErrChainedTypeCast = "ErrChainedTypeCast"
	ErrCompileError = "ErrCompileError"
	ErrCompileFailed = "ErrCompileFailed"
	ErrCompileFailedFor = "ErrCompileFailedFor"
	ErrCompoundAssignIndex = "ErrCompoundAssignIndex"
	ErrContinueOutsideLoop = "ErrContinueOutsideLoop"
	ErrDivisionByZero = "ErrDivisionByZero"
	ErrDuplicateTypeParam = "ErrDuplicateTypeParam"
	ErrExecutionLimit = "ErrExecutionLimit"
	ErrExpectedCaseDefault = "ErrExpectedCaseDefault"
	ErrExpectedClassName = "ErrExpectedClassName"
	ErrExpectedExpression = "ErrExpectedExpression"
	ErrExpectedIterator = "ErrExpectedIterator"
	ErrExpectedMethodName = "ErrExpectedMethodName"
	ErrExpectedParamName = "ErrExpectedParamName"
	ErrExpectedPropertyName = "ErrExpectedPropertyName"
	ErrExpectedStatement = "ErrExpectedStatement"
	ErrExpectedToken = "ErrExpectedToken"
	ErrExpectedType = "ErrExpectedType"
	ErrExpectedVarInUse = "ErrExpectedVarInUse"
	ErrExpectedVarName = "ErrExpectedVarName"
	ErrFailedCreateLoader = "ErrFailedCreateLoader"
	ErrFinalAndAbstractConflict = "ErrFinalAndAbstractConflict"
	ErrForeachRequiresIterable = "ErrForeachRequiresIterable"
	ErrFunctionNotFound = "ErrFunctionNotFound"
	ErrGenericConstraintViolated = "ErrGenericConstraintViolated"
	ErrGenericTypeArgCount = "ErrGenericTypeArgCount"
	ErrGenericTypeParamName = "ErrGenericTypeParamName"
	ErrGenericTypeRequired = "ErrGenericTypeRequired"
	ErrGetExecutablePath = "ErrGetExecutablePath"
	ErrHasRequiresArray = "ErrHasRequiresArray"
	ErrHasRequiresArrayOrMap = "ErrHasRequiresArrayOrMap"
	ErrIPOutOfBounds = "ErrIPOutOfBounds"
	ErrImportNotFound = "ErrImportNotFound"
	ErrIndexTargetUnknown = "ErrIndexTargetUnknown"
	ErrInterfaceMethodMissing = "ErrInterfaceMethodMissing"
	ErrInterfaceMethodParamMismatch = "ErrInterfaceMethodParamMismatch"
	ErrInterfaceMethodReturnMismatch = "ErrInterfaceMethodReturnMismatch"
	ErrInterfaceMethodStaticMismatch = "ErrInterfaceMethodStaticMismatch"
	ErrInterfaceNotImplemented = "ErrInterfaceNotImplemented"
	ErrInvalidAssignTarget = "ErrInvalidAssignTarget"
	ErrInvalidBinaryNumber = "ErrInvalidBinaryNumber"
	ErrInvalidBinaryOp = "ErrInvalidBinaryOp"
	ErrInvalidExponent = "ErrInvalidExponent"
	ErrInvalidFloat = "ErrInvalidFloat"
	ErrInvalidHexNumber = "ErrInvalidHexNumber"
	ErrInvalidInteger = "ErrInvalidInteger"
	ErrInvalidStaticAccess = "ErrInvalidStaticAccess"
	ErrInvalidStaticAccessC = "ErrInvalidStaticAccessC"
	ErrInvalidStaticMember = "ErrInvalidStaticMember"
	ErrLengthRequiresArray = "ErrLengthRequiresArray"
	ErrLengthRequiresMap = "ErrLengthRequiresMap"
	ErrLoadFailed = "ErrLoadFailed"
	ErrMapKeyTypeMismatch = "ErrMapKeyTypeMismatch"
	ErrMapValueTypeMismatch = "ErrMapValueTypeMismatch"
	ErrMethodNotFound = "ErrMethodNotFound"
	ErrModuloNotForFloats = "ErrModuloNotForFloats"
	ErrNativeFuncRestricted = "ErrNativeFuncRestricted"
	ErrNoReturnExpected = "ErrNoReturnExpected"
	ErrNullAssignment = "ErrNullAssignment"
	ErrNullableAccess = "ErrNullableAccess"
	ErrNullableArgument = "ErrNullableArgument"
	ErrNullableReturn = "ErrNullableReturn"
	ErrOnlyObjectsHaveFields = "ErrOnlyObjectsHaveFields"
	ErrOnlyObjectsHaveMethods = "ErrOnlyObjectsHaveMethods"
	ErrOpenProjectConfig = "ErrOpenProjectConfig"
	ErrOperandMustBeNumber = "ErrOperandMustBeNumber"
	ErrOperandsMustBeComparable = "ErrOperandsMustBeComparable"
	ErrOperandsMustBeNumbers = "ErrOperandsMustBeNumbers"
	ErrParseError = "ErrParseError"
	ErrParseFailed = "ErrParseFailed"
	ErrParseFailedFor = "ErrParseFailedFor"
	ErrProjectConfigNotFound = "ErrProjectConfigNotFound"
	ErrPropertyNotFound = "ErrPropertyNotFound"
	ErrPushRequiresArray = "ErrPushRequiresArray"
	ErrReadFailed = "ErrReadFailed"
	ErrReadProjectConfig = "ErrReadProjectConfig"
	ErrResolveSymlinks = "ErrResolveSymlinks"
	ErrReturnCountMismatch = "ErrReturnCountMismatch"
	ErrReturnTypeMismatch = "ErrReturnTypeMismatch"
	ErrRuntimeError = "ErrRuntimeError"
	ErrSelfOutsideClass = "ErrSelfOutsideClass"
	ErrStackOverflow = "ErrStackOverflow"
	ErrStaticMemberNotFound = "ErrStaticMemberNotFound"
	ErrStdLibImportNotFound = "ErrStdLibImportNotFound"
	ErrStdLibNotConfigured = "ErrStdLibNotConfigured"
	ErrStdLibNotFound = "ErrStdLibNotFound"
	ErrSubscriptRequiresArray = "ErrSubscriptRequiresArray"
	ErrSubscriptRequiresMap = "ErrSubscriptRequiresMap"
	ErrSuperArrayNotCompatible = "ErrSuperArrayNotCompatible"
	ErrSwitchNotExhaustive = "ErrSwitchNotExhaustive"
	ErrTooManyLocals = "ErrTooManyLocals"
	ErrTypeCannotInfer = "ErrTypeCannotInfer"
	ErrTypeError = "ErrTypeError"
	ErrTypeMismatch = "ErrTypeMismatch"
	ErrUndeclaredVariable = "ErrUndeclaredVariable"
	ErrUndefinedClass = "ErrUndefinedClass"
	ErrUndefinedEnumCase = "ErrUndefinedEnumCase"
	ErrUndefinedMethod = "ErrUndefinedMethod"
	ErrUndefinedStaticMethod = "ErrUndefinedStaticMethod"
	ErrUndefinedVar = "ErrUndefinedVar"
	ErrUndefinedVariable = "ErrUndefinedVariable"
	ErrUnexpectedChar = "ErrUnexpectedChar"
	ErrUnexpectedDoubleDot = "ErrUnexpectedDoubleDot"
	ErrUnexpectedToken = "ErrUnexpectedToken"
	ErrUnionTypeMismatch = "ErrUnionTypeMismatch"
	ErrUnknownOpcode = "ErrUnknownOpcode"
	ErrUnsupportedExpr = "ErrUnsupportedExpr"
	ErrUnsupportedStmt = "ErrUnsupportedStmt"
	ErrUnterminatedComment = "ErrUnterminatedComment"
	ErrUnterminatedInterp = "ErrUnterminatedInterp"
	ErrUnterminatedString = "ErrUnterminatedString"
	ErrVariableRedeclared = "ErrVariableRedeclared"
	ErrVariableTypeUnknown = "ErrVariableTypeUnknown"
	ErrVoidNotAllowed = "ErrVoidNotAllowed"

	WarnUnreachableCode       = "WarnUnreachableCode"
	WarnUninitializedVariable = "WarnUninitializedVariable"
)
