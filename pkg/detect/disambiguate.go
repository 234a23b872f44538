package detect

import (
	"regexp"
	"strings"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

var (
	rePyInstaller   = regexp.MustCompile(`(?m)^\s*\w+\s*=\s*Analysis\s*\(`)
	rePythonFrom    = regexp.MustCompile(`(?m)^\s*from\s+\w+\s+import\s+\w+`)
	rePythonImport  = regexp.MustCompile(`(?m)^\s*import\s+\w+`)
	reRSpecDescribe = regexp.MustCompile(`(?m)^\s*describe\b`)
	reTerra         = regexp.MustCompile(`(?mi)^\s*terra\b|\bterralib\b`)
	reRakuUseV6     = regexp.MustCompile(`(?mi)^\s*use\s+v6\s*;`)
	reRakuIsCopy    = regexp.MustCompile(`(?mi)\bis\s+copy\b`)
	reRakuArrow     = regexp.MustCompile(`(?m)->\s*\$\w+`)
	reRakuModeline  = regexp.MustCompile(`(?m)^\s*#\s*vim:\s*ft=perl6\b`)
)

// early runs the content probes that must beat the heuristics table.
// ext is lowercase without the dot.
func early(ext, path, content string) (filetype.FileType, bool) {
	switch ext {
	case "h":
		return header(path, content)
	case "spec":
		head := lines(content, 120)
		if rePyInstaller.MatchString(head) || rePythonFrom.MatchString(head) || rePythonImport.MatchString(head) {
			return filetype.Python, true
		}
		if reRSpecDescribe.MatchString(head) && strings.Contains(head, "require") {
			return filetype.Ruby, true
		}
	case "t":
		head := lines(content, 200)
		if reTerra.MatchString(head) {
			return filetype.Terra, true
		}
		if reRakuUseV6.MatchString(head) || reRakuIsCopy.MatchString(head) || reRakuArrow.MatchString(head) || reRakuModeline.MatchString(content) {
			return filetype.Raku, true
		}
	}
	return filetype.Text, false
}

var (
	reEagle        = regexp.MustCompile(`(?mi)<!DOCTYPE\s+eagle\b|<\s*eagle\b`)
	rePcbnew       = regexp.MustCompile(`(?m)^\s*PCBNEW-BOARD\b`)
	reLimbo        = regexp.MustCompile(`(?m)^\s*implement\s+\w+\s*;`)
	reSourcepawn   = regexp.MustCompile(`(?mi)^\s*#\s*include\s*<sourcemod>|^\s*public\s+Plugin:`)
	reGlslVersion  = regexp.MustCompile(`(?mi)^\s*#\s*version\b`)
	reGodotShader  = regexp.MustCompile(`(?mi)^\s*shader_type\b`)
	reJSDecl       = regexp.MustCompile(`(?m)\b(function|var|let|const)\b`)
	reGlslDecl     = regexp.MustCompile(`(?mi)^\s*(uniform|varying|precision)\b`)
	reGlslMain     = regexp.MustCompile(`(?mi)\bvoid\s+main\s*\(`)
	reJSFunction   = regexp.MustCompile(`(?m)^\s*\(function\b|^\s*function\b`)
	reXMLStart     = regexp.MustCompile(`(?m)^\s*<\?xml\b|^\s*<`)
	reWolfram      = regexp.MustCompile(`(?m)^\s*Notebook\s*\[`)
	reNginxServer  = regexp.MustCompile(`(?m)^\s*server\s*\{`)
	reObjJ         = regexp.MustCompile(`(?mi)^\s*@(?:import|implementation|interface|protocol|end)\b`)
	reGap          = regexp.MustCompile(`(?m)\b(?:InstallMethod|InstallGlobalFunction|TryNextMethod|DeclareOperation)\b`)
	reComponentPas = regexp.MustCompile(`(?mi)^\s*(?:module|import)\b`)
)

// late runs the content probes that must beat the pattern and extension
// tables. ext is lowercase without the dot.
func late(ext, content string) (filetype.FileType, bool) {
	switch ext {
	case "sch":
		return schematic(content)
	case "brd":
		if rePcbnew.MatchString(lines(content, 3)) {
			return filetype.KicadLegacyLayout, true
		}
	case "b":
		if reLimbo.MatchString(lines(content, 5)) {
			return filetype.Limbo, true
		}
	case "sls":
		if first, ok := nextNonBlank(content, 0); ok && strings.HasPrefix(strings.TrimLeft(first, " \t"), "(") {
			return filetype.Scheme, true
		}
	case "command":
		return filetype.Sh, true
	case "sp":
		if reSourcepawn.MatchString(lines(content, 80)) {
			return filetype.Sourcepawn, true
		}
	case "fcgi":
		if find(content, 10, false, "<?php") {
			return filetype.Php, true
		}
	case "shader":
		head := lines(content, 60)
		if reGlslVersion.MatchString(head) {
			return filetype.Glsl, true
		}
		if reGodotShader.MatchString(head) {
			return filetype.GdShader, true
		}
	case "gs":
		head := lines(content, 120)
		if reJSDecl.MatchString(head) && (strings.Contains(head, "{") || strings.Contains(head, "=>")) {
			return filetype.JavaScript, true
		}
	case "frag":
		head := lines(content, 80)
		if reGlslVersion.MatchString(head) || reGlslDecl.MatchString(head) || reGlslMain.MatchString(head) {
			return filetype.Glsl, true
		}
		if reJSFunction.MatchString(head) || strings.Contains(head, "window") || strings.Contains(head, "angular") {
			return filetype.JavaScript, true
		}
	case "pks", "pkb":
		return filetype.Plsql, true
	case "workflow", "pluginspec":
		if reXMLStart.MatchString(lines(content, 5)) {
			return filetype.Xml, true
		}
	case "nb", "nbp":
		first, _ := nextNonBlank(content, 0)
		if strings.HasPrefix(strings.TrimLeft(first, " \t"), "(*") || reWolfram.MatchString(lines(content, 40)) {
			return filetype.Mma, true
		}
		return filetype.Text, true
	case "vhost":
		if reNginxServer.MatchString(lines(content, 20)) {
			return filetype.Nginx, true
		}
	case "j":
		if reObjJ.MatchString(lines(content, 50)) {
			return filetype.ObjJ, true
		}
	case "gi":
		if reGap.MatchString(lines(content, 120)) {
			return filetype.Gap, true
		}
	case "cp":
		if reComponentPas.MatchString(lines(content, 50)) {
			return filetype.ComponentPascal, true
		}
	}
	return filetype.Text, false
}

// schematic separates the many formats sharing ".sch".
func schematic(content string) (filetype.FileType, bool) {
	first, ok := nextNonBlank(content, 0)
	if !ok {
		return filetype.Text, false
	}
	first = strings.TrimLeft(first, " \t")
	switch {
	case strings.HasPrefix(first, "EESchema"):
		return filetype.EeschemaSchematic, true
	case strings.HasPrefix(first, "<"):
		if reEagle.MatchString(lines(content, 20)) {
			return filetype.Eagle, true
		}
		return filetype.Xml, true
	case strings.HasPrefix(first, "("):
		return filetype.Scheme, true
	case strings.HasPrefix(first, ";"):
		result, found := filetype.Text, false
		eachLine(content, 200, func(_ int, line string) bool {
			t := strings.TrimLeft(line, " \t")
			if t == "" || strings.HasPrefix(t, ";") {
				return true
			}
			if strings.HasPrefix(t, "(") {
				result, found = filetype.Scheme, true
			}
			return false
		})
		return result, found
	}
	return filetype.Text, false
}
