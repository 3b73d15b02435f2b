package enums

const FILE_BUCKET_VENDOR_LOGO = "vendor-logos"
