package settle

// Builtin returns the built-in defaults catalog. It is shared by every
// Settings instance that does not replace it with WithDefaults or
// ConfigureWithDefaults.
func Builtin() *Catalog { return builtin }

var builtin = MustCatalog(
	// Core settings
	Setting{
		Name:        "DEBUG",
		Default:     Bool(false),
		Description: "Enable debug mode",
	},
	Setting{
		Name:        "SECRET_KEY",
		Default:     String(""),
		Description: "Secret key used for cryptographic signing",
	},
	Setting{
		Name:        "ALLOWED_HOSTS",
		Default:     Strings(),
		Description: "Host names this server will respond to",
	},
	Setting{
		Name:        "BIND_ADDRESS",
		Default:     String("127.0.0.1"),
		Description: "Network address the server binds to",
	},
	Setting{
		Name:        "BIND_PORT",
		Default:     Int(8000),
		Description: "Network port the server binds to",
	},
	Setting{
		Name:        "TIME_ZONE",
		Default:     String("UTC"),
		Description: "Default time zone for date handling",
	},
	Setting{
		Name:        "LANGUAGE_CODE",
		Default:     String("en-us"),
		Description: "Default language code",
	},
	Setting{
		Name:        "DEFAULT_CHARSET",
		Default:     String("utf-8"),
		Description: "Default charset for response bodies",
	},
	Setting{
		Name:        "APPEND_SLASH",
		Default:     Bool(true),
		Description: "Redirect to the same URL with a trailing slash when a route misses",
	},
	Setting{
		Name:        "X_FRAME_OPTIONS",
		Default:     String("DENY"),
		Description: "Value of the X-Frame-Options response header",
	},

	// Applications and request pipeline
	Setting{
		Name:        "INSTALLED_APPS",
		Default:     Strings(),
		Description: "Application packages enabled for this process",
	},
	Setting{
		Name:        "MIDDLEWARE",
		Default:     Strings(),
		Description: "Middleware chain applied to every request",
	},

	// Templates and static assets
	Setting{
		Name:        "TEMPLATES",
		Default:     List(),
		Description: "Template engine configurations",
	},
	Setting{
		Name:        "TEMPLATE_DIRS",
		Default:     Strings(),
		Description: "Directories searched for templates",
		Deprecated:  true,
		ReplacedBy:  "TEMPLATES",
	},
	Setting{
		Name:        "STATIC_URL",
		Default:     String("/static/"),
		Description: "URL prefix for static assets",
	},
	Setting{
		Name:        "STATIC_ROOT",
		Default:     Nil(),
		Description: "Directory static assets are collected into",
	},
	Setting{
		Name:        "MEDIA_URL",
		Default:     String("/media/"),
		Description: "URL prefix for uploaded media",
	},
	Setting{
		Name:        "MEDIA_ROOT",
		Default:     String(""),
		Description: "Directory uploaded media is stored in",
	},

	// Storage backends
	Setting{
		Name: "DATABASES",
		Default: Map(map[string]Value{
			"default": Map(map[string]Value{
				"ENGINE": String("sqlite3"),
				"NAME":   String("app.db"),
			}),
		}),
		Description: "Database connection definitions keyed by alias",
	},
	Setting{
		Name: "CACHES",
		Default: Map(map[string]Value{
			"default": Map(map[string]Value{
				"BACKEND": String("memory"),
			}),
		}),
		Description: "Cache backend definitions keyed by alias",
	},

	// Sessions and CSRF
	Setting{
		Name:        "SESSION_COOKIE_NAME",
		Default:     String("sessionid"),
		Description: "Name of the session cookie",
	},
	Setting{
		Name:        "SESSION_COOKIE_AGE",
		Default:     Int(1209600),
		Description: "Session cookie lifetime in seconds",
	},
	Setting{
		Name:        "CSRF_COOKIE_NAME",
		Default:     String("csrftoken"),
		Description: "Name of the CSRF token cookie",
	},

	// Email
	Setting{
		Name:        "EMAIL_HOST",
		Default:     String("localhost"),
		Description: "Host used for sending email",
	},
	Setting{
		Name:        "EMAIL_PORT",
		Default:     Int(25),
		Description: "Port used for sending email",
	},
	Setting{
		Name:        "DEFAULT_FROM_EMAIL",
		Default:     String("webmaster@localhost"),
		Description: "Default sender address for outgoing email",
	},

	// Uploads
	Setting{
		Name:        "FILE_UPLOAD_MAX_MEMORY_SIZE",
		Default:     Int(2621440),
		Description: "Maximum upload size in bytes held in memory",
	},
	Setting{
		Name:        "DATA_UPLOAD_MAX_NUMBER_FIELDS",
		Default:     Int(1000),
		Description: "Maximum number of form fields accepted per request",
	},

	// Logging
	Setting{
		Name:        "LOG_LEVEL",
		Default:     String("info"),
		Description: "Logging verbosity level",
	},
	Setting{
		Name:        "LOG_FILE",
		Default:     String(""),
		Description: "Log file path (empty for no file logging)",
	},
	Setting{
		Name:        "USE_ETAGS",
		Default:     Bool(false),
		Description: "Emit ETag headers computed from response content",
		Deprecated:  true,
	},
)
