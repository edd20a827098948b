/*
Package config manages configuration parsing and validation for rewriterc.

	            +-------------+
	            |   Config    |
	            | (RuleSets)  |
	            +------+------+
	                   |
	      +------------+-----------+
	      |            |           |
	+-----+----+ +-----+----+ +----+-----+
	|   JSON   | |   YAML   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describes where the target files live and how they are selected
- Holds the ordered rule sets applied to every target
- Ships the built-in blog configuration (Default)

🔄 Flow:
1. Default() or Load(ctx, path)
2. Format-specific parsing through the parser registry
3. Validate fills defaults (extension, file glob) and rejects broken rules

🔍 Example (HCL):

	targets_root   = "posts"
	file_extension = ".html"

	vars = {
	  base_url = "https://example.com/posts"
	}

	rule_set "containers" {
	  rule "main-class" {
	    match   = "<main class=\"container\">"
	    replace = "<main class=\"blog-container\">"
	  }
	}

	rule_set "comments" {
	  requires         = ["containers"]
	  skip_if_contains = ["disqus_thread"]

	  rule "embed" {
	    match           = "</body>"
	    replace         = "<script src=\"{{.URL}}\"></script>\n</body>"
	    template        = true
	    unless_contains = ["disqus_config"]
	  }
	}
*/
package config
