package news

// Config holds the file-based configuration for the site. These are bootstrap
// settings loaded from config.yaml before any store is opened.
type Config struct {
	DataFile          string `yaml:"datafile"`
	CacheFile         string `yaml:"cachefile"`
	SessionDBFile     string `yaml:"sessiondbfile"`
	ImageDir          string `yaml:"image_dir"`
	Host              string `yaml:"host"`
	BaseURL           string `yaml:"base_url"`
	LogFormat         string `yaml:"log_format"`
	LogLevel          string `yaml:"log_level"`
	AdminUser         string `yaml:"admin_user"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
	CookieExpiry      int    `yaml:"cookie_expiry"`
	WeatherURL        string `yaml:"weather_url"`
	WeatherCacheFile  string `yaml:"weather_cache_file"`

	CookieSecret []byte `yaml:"-"`
}
