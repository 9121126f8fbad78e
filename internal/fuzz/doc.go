// Package fuzztests houses Go fuzz harnesses for the rsmin pipeline
// (source -> lexer -> item tree -> minifier). They guard against panics on
// arbitrary input and check that minified output re-lexes to the same tokens.
//
// Назначение: прогонять произвольные байты через лексер, парсер, DocStripper
// и минификатор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
