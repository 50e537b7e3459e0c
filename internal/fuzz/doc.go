// Package fuzztests houses Go fuzz harnesses that exercise the front end
// (source -> lexer -> parser -> scope). Its goal is to smoke test robustness
// and guard against panics or hangs on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// резолвер областей, проверяя инварианты на корректно разобранных входах.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
