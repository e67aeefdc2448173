// Package config provides configuration parsing for fieldkit.
//
// The configuration is stored in fieldkit.json, looked up from the working
// directory upwards. Every key is optional.
//
// # Configuration File Structure
//
//	{
//	  "locale": "fr",
//	  "catalogs": ["i18n/extra.yaml"],
//	  "render": {
//	    "pretty": true,
//	    "indent": "  ",
//	    "title": "Add file type",
//	    "stylesheets": ["/static/semantic.css"]
//	  },
//	  "filetypes": {
//	    "extensions": ["pdf", "pptx"]
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "fieldkit"
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Find(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Locale:", cfg.Locale)
package config
