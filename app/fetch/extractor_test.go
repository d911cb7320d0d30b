package fetch

import (
	"strings"
	"testing"
)

func TestExtractor_Run_ValidHTML(t *testing.T) {
	extractor := NewExtractor()

	htmlContent := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Test Article</title>
	</head>
	<body>
		<header>
			<h1>Site Header</h1>
			<nav>Navigation</nav>
		</header>
		<main>
			<article>
				<h1>Main Article Title</h1>
				<p>This is the main content of the article. It contains several paragraphs of meaningful text that should be extracted by the readability algorithm.</p>
				<p>This is another paragraph with more content. The readability algorithm should identify this as the main content area and extract it properly.</p>
				<p>Here is some more substantial content to ensure we meet the character threshold. This paragraph adds more context and information that would be valuable to readers.</p>
			</article>
		</main>
		<aside>
			<div>Advertisement</div>
		</aside>
		<footer>
			<p>Copyright 2024</p>
		</footer>
	</body>
	</html>
	`

	result := extractor.Run([]byte(htmlContent))

	if result == "" {
		t.Fatal("Expected non-empty extracted text")
	}
	if !strings.Contains(result, "main content of the article") {
		t.Errorf("Expected extracted text to contain article body, got: %q", result)
	}
}

func TestExtractor_Run_EmptyInput(t *testing.T) {
	extractor := NewExtractor()

	if result := extractor.Run(nil); result != "" {
		t.Errorf("Expected empty string for empty input, got %q", result)
	}
	if result := extractor.Run([]byte{}); result != "" {
		t.Errorf("Expected empty string for zero-length input, got %q", result)
	}
}
