// Package configs loads the followscraper configuration document.
//
// The document has three sections:
//
//	{
//	    "LOG":     {"LEVEL": "INFO", "FILE": "./log/%DATE%.log", "STDOUT": "ON"},
//	    "TWITTER": {"CONSUMER_KEY": "...", "CONSUMER_SEC_KEY": "...",
//	                "ACCESS_TOKEN": "...", "ACCESS_SEC_TOKEN": "...", "ID": "jack"},
//	    "OUTPUT":  {"FOLLOWERS": "followers.csv", "FOLLOWINGS": "followings.csv"}
//	}
//
// # Formats
//
// The format follows the file extension: .toml and .yaml/.yml are decoded as
// such, anything else as JSON.
//
// # Character Sets
//
// Files may be stored in a legacy encoding. Load converts shift_jis, euc-jp,
// iso-2022-jp, windows-1252 and iso-8859-1 to UTF-8 before decoding. A UTF-8
// byte order mark is ignored.
//
// # Environment Overrides
//
// FOLLOWSCRAPER_<KEY> variables override LOG and TWITTER values, for example
// FOLLOWSCRAPER_CONSUMER_KEY or FOLLOWSCRAPER_LOG_LEVEL. A .env file next to
// the configuration supplies values not present in the process environment.
//
// # Validation
//
// LOG.LEVEL and LOG.STDOUT are required. The TWITTER and OUTPUT sections are
// checked by the scraper when it starts.
package configs
