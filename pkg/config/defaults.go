// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// Built-in values for the logits blog.
const (
	DefaultTargetsRoot     = "posts"
	DefaultBaseURL         = "https://priyanathmaji.github.io/logits/posts"
	DefaultDisqusShortname = "https-priyanathmaji-github-io-logits"

	// DisqusThreadMarker marks a post whose comments section is already in place.
	DisqusThreadMarker = "disqus_thread"
)

const navbarBrand = `<a href="../index.html" class="nav-brand">
                <img src="../images/logx.PNG" alt="logits">
                <span>logits</span>
            </a>`

const highlightJSLinks = `  <!-- Highlight.js for Code Syntax Highlighting -->
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/highlight.js@11.9.0/styles/atom-one-dark.min.css">
  <script src="https://cdn.jsdelivr.net/npm/highlight.js@11.9.0/highlight.min.js"></script>`

const disqusEmbed = `
  <!-- Disqus Configuration -->
  <script>
    var disqus_config = function () {
      this.page.url = '{{.URL}}';
      this.page.identifier = '{{.ID}}';
      this.reactions_enabled = 0;
    };

    (function() {
      var d = document, s = d.createElement('script');
      s.src = 'https://{{.Vars.disqus_shortname}}.disqus.com/embed.js';
      s.setAttribute('data-timestamp', +new Date());
      (d.head || d.body).appendChild(s);
    })();
  </script>
  <noscript>Please enable JavaScript to view the <a href="https://disqus.com/?ref_noscript">comments powered by Disqus.</a></noscript>`

const disqusThread = `
        <!-- Disqus Comments -->
        <div id="disqus_thread"></div>
      </footer>`

const footerClose = "</div>\n        </div>\n      </footer>"

// 🏭 Default returns the built-in configuration for the blog posts directory
func Default() *Config {
	cfg := &Config{
		TargetsRoot:   DefaultTargetsRoot,
		FileExtension: defaultFileExtension,
		Vars: map[string]string{
			"base_url":         DefaultBaseURL,
			"disqus_shortname": DefaultDisqusShortname,
		},
		RuleSets: []RuleSet{
			{
				Name:        "containers",
				Description: "rename the main container class",
				Rules: []Rule{
					{
						Name:    "main-class",
						Match:   `<main class="container">`,
						Replace: `<main class="blog-container">`,
					},
				},
			},
			{
				Name:        "navbar",
				Description: "swap the text brand for the logits logo",
				Rules: []Rule{
					{
						Name:    "brand",
						Regex:   `<a href="\.\./index\.html" class="nav-brand">Priyanath Maji</a>`,
						Replace: navbarBrand,
					},
				},
			},
			{
				Name:        "titles",
				Description: "update the page title suffix",
				Rules: []Rule{
					{
						Name:    "suffix",
						Match:   " - Priyanath Maji",
						Replace: " - logits",
					},
				},
			},
			{
				Name:           "comments",
				Description:    "add syntax highlighting, share links and Disqus comments",
				Requires:       []string{"containers"},
				SkipIfContains: []string{DisqusThreadMarker},
				Rules: []Rule{
					{
						Name:               "highlightjs",
						Match:              "</head>",
						Replace:            highlightJSLinks + "\n</head>",
						UnlessContainsFold: []string{"highlight.js"},
					},
					{
						Name:       "share-twitter",
						Regex:      `<a href="#" class="share-btn">Twitter</a>`,
						Replace:    `<a href="https://twitter.com/intent/tweet?text={{escapeSpaces .Title}}&url={{.URL}}" target="_blank" class="share-btn">Twitter</a>`,
						Template:   true,
						IfContains: []string{"share-buttons"},
					},
					{
						Name:       "share-linkedin",
						Regex:      `<a href="#" class="share-btn">LinkedIn</a>`,
						Replace:    `<a href="https://www.linkedin.com/sharing/share-offsite/?url={{.URL}}" target="_blank" class="share-btn">LinkedIn</a>`,
						Template:   true,
						IfContains: []string{"share-buttons"},
					},
					{
						Name:       "share-facebook",
						Regex:      `<a href="#" class="share-btn">Facebook</a>`,
						Replace:    `<a href="https://www.facebook.com/sharer/sharer.php?u={{.URL}}" target="_blank" class="share-btn">Facebook</a>`,
						Template:   true,
						IfContains: []string{"share-buttons"},
					},
					{
						Name:       "thread",
						Match:      footerClose,
						Replace:    "</div>\n        </div>\n" + disqusThread,
						IfContains: []string{"share-section"},
					},
					{
						Name:           "embed",
						Match:          "</body>",
						Replace:        disqusEmbed + "\n</body>",
						Template:       true,
						UnlessContains: []string{"disqus_config"},
					},
				},
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}
